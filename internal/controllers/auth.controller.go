package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/services"
)

type tokenRequest struct {
	Secret string `json:"secret" binding:"required"`
	Client string `json:"client"`
}

// HandleGetToken exchanges the shared dashboard secret for a JWT.
func HandleGetToken(c *gin.Context) {
	if !services.AuthEnabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "auth is not enabled"})
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.SharedSecretMatches(req.Secret) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret"})
		return
	}

	client := req.Client
	if client == "" {
		client = c.ClientIP()
	}

	token, err := services.GenerateToken(client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "client": client})
}
