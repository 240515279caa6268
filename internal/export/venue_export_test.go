package export

import (
	"bytes"
	"strings"
	"testing"

	"clubhub/internal/models"
)

func sampleVenue() models.Venue {
	return models.Venue{
		Name:         "Hall",
		Address:      "1 Main St",
		Telephone:    "555-1234",
		Website:      "http://x",
		EmailAddress: "a@x.com",
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	out, err := WriteCSV(nil)
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	want := "Venue Name,Address,Telephone,Website,Email\n"
	if string(out) != want {
		t.Errorf("WriteCSV(nil) = %q, want %q", out, want)
	}
}

func TestWriteCSVSingleVenue(t *testing.T) {
	out, err := WriteCSV([]models.Venue{sampleVenue()})
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if lines[1] != "Hall,1 Main St,555-1234,http://x,a@x.com" {
		t.Errorf("data row = %q", lines[1])
	}
}

func TestWriteCSVQuotesDelimiter(t *testing.T) {
	venue := sampleVenue()
	venue.Address = "1 Main St, Suite 2"
	out, err := WriteCSV([]models.Venue{venue})
	if err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	if !strings.Contains(string(out), `"1 Main St, Suite 2"`) {
		t.Errorf("address with comma was not quoted: %q", out)
	}
}

func TestWriteText(t *testing.T) {
	out := WriteText([]models.Venue{sampleVenue(), sampleVenue()})
	want := "Hall\n1 Main St\n555-1234\nhttp://x\na@x.com\n\n"
	if string(out) != want+want {
		t.Errorf("WriteText = %q, want %q", out, want+want)
	}

	if len(WriteText(nil)) != 0 {
		t.Errorf("WriteText(nil) should be empty")
	}
}

func TestWritePDF(t *testing.T) {
	out, err := WritePDF([]models.Venue{sampleVenue(), sampleVenue(), sampleVenue()})
	if err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
	// One page per venue.
	if got := bytes.Count(out, []byte("/Type /Page\n")); got < 3 {
		t.Errorf("expected at least 3 page objects, found %d", got)
	}
}

func TestWritePDFEmpty(t *testing.T) {
	out, err := WritePDF(nil)
	if err != nil {
		t.Fatalf("WritePDF(nil) returned error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("empty export should still be a valid PDF document")
	}
}
