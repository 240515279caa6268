package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/export"
	"clubhub/internal/forms"
	"clubhub/internal/helpers"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/services"
)

func venueService(c *gin.Context) (*services.VenueService, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return &services.VenueService{
		DB:                db.(*gorm.DB),
		EnforceOwnerCheck: middleware.GetConfig(c).EnforceVenueOwnerCheck,
	}, true
}

func bindVenueForm(c *gin.Context) forms.VenueForm {
	return forms.VenueForm{
		Name:         c.PostForm("name"),
		Address:      c.PostForm("address"),
		Telephone:    c.PostForm("telephone"),
		Website:      c.PostForm("website"),
		EmailAddress: c.PostForm("email_address"),
	}
}

func ListVenues(c *gin.Context) {
	service, ok := venueService(c)
	if !ok {
		return
	}

	page, err := helpers.StringToInt(c.DefaultQuery("page", "1"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	venueList, venues, pagination, err := service.List(page)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venue_list": venueList,
		"venues":     venues,
		"pagination": pagination,
	})
}

func ShowVenue(c *gin.Context) {
	service, ok := venueService(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	venue, err := service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	// Owner is a bare id with no enforced reference; the user row may be
	// gone.
	var owner *models.User
	var user models.User
	if err := service.DB.Where("id = ?", venue.Owner).First(&user).Error; err == nil {
		owner = &user
	}

	response := gin.H{"venue": venue}
	if owner != nil {
		response["venue_owner"] = gin.H{
			"id":    owner.ID,
			"name":  owner.FullName(),
			"email": owner.Email,
		}
	}
	c.JSON(http.StatusOK, response)
}

func AddVenue(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{
			"form":      forms.VenueForm{},
			"submitted": c.Query("submitted") == "True",
		})
		return
	}

	service, ok := venueService(c)
	if !ok {
		return
	}

	actingUser, ok := actingUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	form := bindVenueForm(c)
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	imageFile, err := c.FormFile("venue_image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "venue_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		form.VenueImage = imagePath
	}

	if _, err := service.Create(&form, actingUser); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create venue.")
		return
	}

	c.Redirect(http.StatusFound, "/add_venue?submitted=True")
}

func UpdateVenue(c *gin.Context) {
	service, ok := venueService(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	if c.Request.Method == http.MethodGet {
		venue, err := service.Get(id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
				return
			}
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"venue": venue,
			"form":  forms.VenueFormFromModel(venue),
		})
		return
	}

	actingUser, _ := actingUserID(c)

	form := bindVenueForm(c)
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	imageFile, err := c.FormFile("venue_image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "venue_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		form.VenueImage = imagePath
	}

	if _, err := service.Update(id, &form, actingUser); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		case errors.Is(err, services.ErrForbidden):
			redirectWithNotice(c, "/venues", "You are not able to update this venue!")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update venue.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/venues")
}

func DeleteVenue(c *gin.Context) {
	service, ok := venueService(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	actingUser, _ := actingUserID(c)

	if err := service.Delete(id, actingUser); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		case errors.Is(err, services.ErrForbidden):
			redirectWithNotice(c, "/venues", "You are not able to delete this venue!")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete venue.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/venues")
}

func SearchVenues(c *gin.Context) {
	service, ok := venueService(c)
	if !ok {
		return
	}

	searched := c.PostForm("searched")
	venues, err := service.Search(searched)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"searched": searched,
		"venues":   venues,
	})
}

func venueExporter(c *gin.Context) (*export.VenueExporter, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return &export.VenueExporter{DB: db.(*gorm.DB)}, true
}

func VenuePDF(c *gin.Context) {
	exporter, ok := venueExporter(c)
	if !ok {
		return
	}
	data, err := exporter.RenderPDF()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF.")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=venue.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func VenueCSV(c *gin.Context) {
	exporter, ok := venueExporter(c)
	if !ok {
		return
	}
	data, err := exporter.RenderCSV()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate CSV.")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=venues.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

func VenueText(c *gin.Context) {
	exporter, ok := venueExporter(c)
	if !ok {
		return
	}
	data, err := exporter.RenderText()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate text file.")
		return
	}
	c.Header("Content-Disposition", "attachment; filename=venues.txt")
	c.Data(http.StatusOK, "text/plain", data)
}
