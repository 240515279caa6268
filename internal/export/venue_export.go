package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"clubhub/internal/models"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

const separator = "___________________________"

var csvHeader = []string{"Venue Name", "Address", "Telephone", "Website", "Email"}

// VenueExporter renders the full venue collection, in store-default
// order, into downloadable byte streams.
type VenueExporter struct {
	DB *gorm.DB
}

func (e *VenueExporter) fetch() ([]models.Venue, error) {
	var venues []models.Venue
	if err := e.DB.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (e *VenueExporter) RenderPDF() ([]byte, error) {
	venues, err := e.fetch()
	if err != nil {
		return nil, err
	}
	return WritePDF(venues)
}

func (e *VenueExporter) RenderCSV() ([]byte, error) {
	venues, err := e.fetch()
	if err != nil {
		return nil, err
	}
	return WriteCSV(venues)
}

func (e *VenueExporter) RenderText() ([]byte, error) {
	venues, err := e.fetch()
	if err != nil {
		return nil, err
	}
	return WriteText(venues), nil
}

// WritePDF lays out one page per venue: the five venue fields as
// successive Helvetica 14 lines starting one inch from the page's
// top-left corner, then a separator line.
func WritePDF(venues []models.Venue) ([]byte, error) {
	const inch = 72.0
	const lineHeight = 18.0

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 14)

	for _, venue := range venues {
		pdf.AddPage()
		pdf.SetXY(inch, inch)
		lines := []string{
			venue.Name,
			venue.Address,
			venue.Telephone,
			venue.Website,
			venue.EmailAddress,
			separator,
		}
		for _, line := range lines {
			pdf.CellFormat(0, lineHeight, line, "", 2, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV emits the header row followed by one row per venue.
func WriteCSV(venues []models.Venue) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, venue := range venues {
		row := []string{venue.Name, venue.Address, venue.Telephone, venue.Website, venue.EmailAddress}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteText emits five lines per venue followed by a blank line.
func WriteText(venues []models.Venue) []byte {
	var buf bytes.Buffer
	for _, venue := range venues {
		fmt.Fprintf(&buf, "%s\n%s\n%s\n%s\n%s\n\n",
			venue.Name, venue.Address, venue.Telephone, venue.Website, venue.EmailAddress)
	}
	return buf.Bytes()
}
