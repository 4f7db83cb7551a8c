package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/db"
	"promptstudio/internal/services"
)

type renderRequest struct {
	Files []services.SelectedFile `json:"files" binding:"required"`
}

// RenderMarkdown assembles the posted selection into a Markdown document.
func RenderMarkdown(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fillTokens(req.Files)
	c.JSON(http.StatusOK, gin.H{
		"format":   "markdown",
		"document": services.RenderMarkdown(req.Files),
	})
}

// RenderXML assembles the posted selection into the sectioned XML
// document, grouping files by the saved prompt categories.
func RenderXML(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Without a database every file lands in the codebase section.
	prompts, err := db.ListPrompts(c.Request.Context())
	if err != nil && !errors.Is(err, db.ErrNotConfigured) {
		respondDBError(c, err)
		return
	}

	fillTokens(req.Files)
	c.JSON(http.StatusOK, gin.H{
		"format":   "xml",
		"document": services.RenderXML(req.Files, services.CategoryMap(prompts)),
	})
}

func fillTokens(files []services.SelectedFile) {
	counter := services.GetCounter()
	for i, file := range files {
		if file.Tokens == 0 {
			files[i].Tokens = counter.Count(file.Content)
		}
	}
}
