package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/db"
	"promptstudio/internal/models"
	"promptstudio/internal/services"
)

type promptRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"required"`
}

// ListPrompts returns all saved prompt records with their token counts.
func ListPrompts(c *gin.Context) {
	prompts, err := db.ListPrompts(c.Request.Context())
	if err != nil {
		respondDBError(c, err)
		return
	}

	counter := services.GetCounter()
	tokens := make(map[string]int, len(prompts))
	for _, prompt := range prompts {
		tokens[prompt.Filename] = counter.Count(prompt.Content)
	}

	c.JSON(http.StatusOK, gin.H{"prompts": prompts, "tokens": tokens})
}

// CreatePrompt saves a new prompt record.
func CreatePrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of prompt, prd, instructions, example"})
		return
	}

	prompt, err := db.CreatePrompt(c.Request.Context(), req.Filename, req.Content, models.PromptCategory(req.Category))
	if err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

// UpdatePrompt replaces an existing prompt record.
func UpdatePrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be one of prompt, prd, instructions, example"})
		return
	}

	prompt, err := db.UpdatePrompt(c.Request.Context(), c.Param("id"), req.Filename, req.Content, models.PromptCategory(req.Category))
	if err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// DeletePrompt removes a prompt record.
func DeletePrompt(c *gin.Context) {
	if err := db.DeletePrompt(c.Request.Context(), c.Param("id")); err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func respondDBError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
