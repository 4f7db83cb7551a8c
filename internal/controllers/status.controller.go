package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/services"
)

// GetStatus returns the host health snapshot for the dashboard footer.
func GetStatus(c *gin.Context) {
	status, err := services.GetHostStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
