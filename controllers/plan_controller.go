package controllers

import (
	"net/http"
	"strconv"

	"sweatfix/services"
	"sweatfix/utils"

	"github.com/gin-gonic/gin"
)

const planWindow = 14

type planInput struct {
	Date        string  `json:"date"`
	WorkoutPlan *string `json:"workout_plan"`
	DietPlan    *string `json:"diet_plan"`
}

type completeInput struct {
	Completed *bool `json:"completed"`
}

// GetPlans returns the retained plan window, newest first.
func GetPlans(c *gin.Context) {
	userID := c.GetUint("userID")

	plans, err := services.ListRecentPlans(userID, planWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// UpsertPlan writes the day's plan texts. Omitted fields keep their stored
// values; the completion flag is never touched here.
func UpsertPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Date == "" {
		input.Date = utils.TodayLabel()
	}

	plan, err := services.UpsertPlan(userID, input.Date, input.WorkoutPlan, input.DietPlan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CompletePlan toggles the completion flag, scoped to the owner. A plan id
// belonging to someone else produces the same success response with no write.
func CompletePlan(c *gin.Context) {
	userID := c.GetUint("userID")

	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var input completeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "completed flag required"})
		return
	}

	if err := services.SetCompletion(userID, uint(planID), *input.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
