package controllers

import (
	"net/http"
	"strings"

	"sweatfix/services"

	"github.com/gin-gonic/gin"
)

type updateUserInput struct {
	Name *string `json:"name"`
}

// UpdateUser changes the display name, the only profile edit the dashboard
// offers.
func UpdateUser(c *gin.Context) {
	userID := c.GetUint("userID")

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name"})
		return
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name"})
		return
	}

	user, err := services.UpdateUserName(userID, *input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
