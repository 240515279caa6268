package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubhub/internal/forms"
	"clubhub/internal/helpers"
	"clubhub/internal/middleware"
	"clubhub/internal/services"
)

func eventService(c *gin.Context) (*services.EventService, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return &services.EventService{DB: db.(*gorm.DB)}, true
}

func bindEventForm(c *gin.Context) forms.EventForm {
	return forms.EventForm{
		Name:        c.PostForm("name"),
		EventDate:   c.PostForm("event_date"),
		Venue:       c.PostForm("venue"),
		Description: c.PostForm("description"),
		Attendees:   c.PostFormArray("attendees"),
	}
}

func ListEvents(c *gin.Context) {
	service, ok := eventService(c)
	if !ok {
		return
	}

	events, err := service.AllOrderedByName()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events_list": events})
}

func SearchEvents(c *gin.Context) {
	service, ok := eventService(c)
	if !ok {
		return
	}

	searched := c.PostForm("searched")
	events, err := service.Search(searched)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"searched": searched,
		"events":   events,
	})
}

func AddEvent(c *gin.Context) {
	isPrivileged := middleware.IsPrivileged(c)

	if c.Request.Method == http.MethodGet {
		response := gin.H{"submitted": c.Query("submitted") == "True"}
		if isPrivileged {
			response["form"] = forms.EventFormAdmin{}
		} else {
			response["form"] = forms.EventForm{}
		}
		c.JSON(http.StatusOK, response)
		return
	}

	service, ok := eventService(c)
	if !ok {
		return
	}

	actingUser, ok := actingUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	refs := services.Refs{DB: service.DB}

	if isPrivileged {
		form := forms.EventFormAdmin{
			EventForm: bindEventForm(c),
			Manager:   c.PostForm("manager"),
		}
		if errs := form.Validate(refs); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
			return
		}
		if _, err := service.Create(&form.EventForm, form.ManagerID(), actingUser, true); err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
			return
		}
	} else {
		form := bindEventForm(c)
		if errs := form.Validate(refs); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
			return
		}
		// Whatever manager value the raw submission carries is ignored.
		if _, err := service.Create(&form, uuid.Nil, actingUser, false); err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
			return
		}
	}

	c.Redirect(http.StatusFound, "/add_event?submitted=True")
}

func UpdateEvent(c *gin.Context) {
	service, ok := eventService(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	isPrivileged := middleware.IsPrivileged(c)

	if c.Request.Method == http.MethodGet {
		event, err := service.Get(id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
				return
			}
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
			return
		}
		response := gin.H{"event": event}
		if isPrivileged {
			response["form"] = forms.EventFormAdminFromModel(event)
		} else {
			response["form"] = forms.EventFormFromModel(event)
		}
		c.JSON(http.StatusOK, response)
		return
	}

	actingUser, ok := actingUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	refs := services.Refs{DB: service.DB}

	if isPrivileged {
		form := forms.EventFormAdmin{
			EventForm: bindEventForm(c),
			Manager:   c.PostForm("manager"),
		}
		if errs := form.Validate(refs); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
			return
		}
		if _, err := service.Update(id, &form.EventForm, form.ManagerID(), actingUser, true); err != nil {
			respondEventMutationError(c, err)
			return
		}
	} else {
		form := bindEventForm(c)
		if errs := form.Validate(refs); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
			return
		}
		if _, err := service.Update(id, &form, uuid.Nil, actingUser, false); err != nil {
			respondEventMutationError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, "/events")
}

func respondEventMutationError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save event.")
}

func DeleteEvent(c *gin.Context) {
	service, ok := eventService(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	actingUser, ok := actingUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	if err := service.Delete(id, actingUser); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		case errors.Is(err, services.ErrForbidden):
			redirectWithNotice(c, "/events", "You are not able to delete this event!")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		}
		return
	}

	redirectWithNotice(c, "/events", "Event Deleted!")
}

func MyEvents(c *gin.Context) {
	actingUser, ok := actingUserID(c)
	if !ok {
		redirectWithNotice(c, "/", "You are not able to view this page!")
		return
	}

	service, ok := eventService(c)
	if !ok {
		return
	}

	events, err := service.ForAttendee(actingUser)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
