package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clubhub/internal/calendar"
	"clubhub/internal/helpers"
	"clubhub/internal/models"
)

// Home renders the month calendar. Year and month default to the
// current wall-clock values, computed per request.
func Home(c *gin.Context) {
	now := time.Now()

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := helpers.StringToInt(raw)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid year.")
			return
		}
		year = parsed
	}

	monthName := c.DefaultQuery("month", now.Month().String())

	grid, err := calendar.RenderMonth(year, monthName)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid month name.")
		return
	}

	name := ""
	if userID, ok := actingUserID(c); ok {
		if db, exists := c.Get("db"); exists {
			var user models.User
			if err := db.(*gorm.DB).Where("id = ?", userID).First(&user).Error; err == nil {
				name = user.FullName()
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         name,
		"year":         grid.Year,
		"month":        grid.Month.String(),
		"month_number": int(grid.Month),
		"cal":          grid.Weeks,
		"current_year": now.Year(),
	})
}
