package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptstudio/internal/models"
	"promptstudio/internal/services"
)

type selectionRequest struct {
	Tree     []models.TreeNode `json:"tree" binding:"required"`
	Selected []string          `json:"selected"`
	DirPath  string            `json:"dir_path" binding:"required"`
}

// ToggleSelection applies a directory-level toggle to the posted
// selection and returns the new selection with its running token total.
// Selection is caller-owned state; nothing is stored server-side.
func ToggleSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, ok := findNode(req.Tree, req.DirPath)
	if !ok || !dir.IsDir() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir_path does not name a directory in the tree"})
		return
	}

	sel := make(services.Selection, len(req.Selected))
	for _, path := range req.Selected {
		sel[path] = true
	}

	next := services.ToggleSubtree(dir, sel, services.GetExclusions())

	paths := make([]string, 0, len(next))
	for path := range next {
		paths = append(paths, path)
	}

	c.JSON(http.StatusOK, gin.H{
		"selected": paths,
		"tokens":   services.SelectedTokens(req.Tree, next),
	})
}

func findNode(nodes []models.TreeNode, path string) (models.TreeNode, bool) {
	for _, node := range nodes {
		if node.Path == path {
			return node, true
		}
		if node.IsDir() {
			if found, ok := findNode(node.Children, path); ok {
				return found, true
			}
		}
	}
	return models.TreeNode{}, false
}
