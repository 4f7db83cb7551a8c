package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/db"
	"promptstudio/internal/services"
)

type fileRequest struct {
	Path    string `json:"path" binding:"required"`
	Content string `json:"content"`
}

// ListFiles returns all saved file records with their token counts.
func ListFiles(c *gin.Context) {
	files, err := db.ListFiles(c.Request.Context())
	if err != nil {
		respondDBError(c, err)
		return
	}

	counter := services.GetCounter()
	tokens := make(map[string]int, len(files))
	for _, file := range files {
		tokens[file.Path] = counter.Count(file.Content)
	}

	c.JSON(http.StatusOK, gin.H{"files": files, "tokens": tokens})
}

// CreateFile saves a new file record.
func CreateFile(c *gin.Context) {
	var req fileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := db.CreateFile(c.Request.Context(), req.Path, req.Content)
	if err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// UpdateFile replaces an existing file record.
func UpdateFile(c *gin.Context) {
	var req fileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := db.UpdateFile(c.Request.Context(), c.Param("id"), req.Path, req.Content)
	if err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// DeleteFile removes a file record.
func DeleteFile(c *gin.Context) {
	if err := db.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		respondDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
