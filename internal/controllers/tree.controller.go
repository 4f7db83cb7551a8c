package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/models"
	"promptstudio/internal/services"
)

// GetTree fetches a repository tree and returns it with token weights.
// Query params: owner, repo, branch (default: main), path (default: root)
func GetTree(c *gin.Context) {
	ref := models.RepoRef{
		Owner:  c.Query("owner"),
		Repo:   c.Query("repo"),
		Branch: c.DefaultQuery("branch", "main"),
	}
	if ref.Owner == "" || ref.Repo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner and repo are required"})
		return
	}

	nodes, err := services.GetTreeBuilder().Build(c.Request.Context(), ref, c.Query("path"), nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"owner":  ref.Owner,
		"repo":   ref.Repo,
		"branch": ref.Branch,
		"tree":   nodes,
	})
}
