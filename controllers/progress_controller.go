package controllers

import (
	"net/http"

	"sweatfix/models"
	"sweatfix/services"
	"sweatfix/utils"

	"github.com/gin-gonic/gin"
)

const progressWindow = 7

type progressInput struct {
	Date        string `json:"date"`
	WorkoutName string `json:"workout_name"`
	Calories    *int   `json:"calories"`
	Protein     *int   `json:"protein"`
	Water       *int   `json:"water"`
	Carbs       *int   `json:"carbs"`
	Fats        *int   `json:"fats"`
}

// GetProgress returns the recent log window, newest first.
func GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	entries, err := services.ListRecentProgress(userID, progressWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// LogProgress appends one entry. Missing numeric fields store as 0, never
// null; negative values are rejected outright.
func LogProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	var input progressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orZero := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	entry := models.ProgressEntry{
		UserID:      userID,
		Date:        input.Date,
		WorkoutName: input.WorkoutName,
		Calories:    orZero(input.Calories),
		Protein:     orZero(input.Protein),
		Water:       orZero(input.Water),
		Carbs:       orZero(input.Carbs),
		Fats:        orZero(input.Fats),
	}
	if entry.Date == "" {
		entry.Date = utils.TodayLabel()
	}
	if entry.Calories < 0 || entry.Protein < 0 || entry.Water < 0 || entry.Carbs < 0 || entry.Fats < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "metric values must be non-negative"})
		return
	}

	if err := services.AppendProgress(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
