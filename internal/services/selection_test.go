package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptstudio/internal/models"
)

func selectionTree() models.TreeNode {
	return models.TreeNode{
		Name: "assets", Path: "assets", Type: models.NodeDirectory, Tokens: 9,
		Children: []models.TreeNode{
			{
				Name: "docs", Path: "assets/docs", Type: models.NodeDirectory, Tokens: 9,
				Children: []models.TreeNode{
					{Name: "a.md", Path: "assets/docs/a.md", Type: models.NodeFile, Tokens: 4},
					{Name: "b.md", Path: "assets/docs/b.md", Type: models.NodeFile, Tokens: 5},
				},
			},
			{Name: "icon.ico", Path: "assets/icon.ico", Type: models.NodeFile, Tokens: 100},
		},
	}
}

var testExcluded = map[string]bool{".ico": true, ".png": true}

func TestSelectSubtreeSkipsExcludedExtensions(t *testing.T) {
	dir := selectionTree()

	sel := SelectSubtree(dir, Selection{}, testExcluded)

	assert.True(t, sel["assets"])
	assert.True(t, sel["assets/docs"])
	assert.True(t, sel["assets/docs/a.md"])
	assert.True(t, sel["assets/docs/b.md"])
	assert.False(t, sel["assets/icon.ico"], "excluded file must not be auto-selected")

	total := SelectedTokens([]models.TreeNode{dir}, sel)
	assert.Equal(t, 9, total, "total counts the two included files only")
}

func TestDirectoriesAreNotCountedInTotal(t *testing.T) {
	dir := selectionTree()
	sel := SelectSubtree(dir, Selection{}, testExcluded)

	// Both directory paths sit in the selection for UI bookkeeping, yet
	// the total equals the file weights alone.
	assert.True(t, sel["assets"])
	assert.True(t, sel["assets/docs"])
	assert.Equal(t, 9, SelectedTokens([]models.TreeNode{dir}, sel))
}

func TestToggleSubtreeRoundTrips(t *testing.T) {
	dir := selectionTree()

	sel := ToggleSubtree(dir, Selection{}, testExcluded)
	assert.NotEmpty(t, sel)

	sel = ToggleSubtree(dir, sel, testExcluded)
	assert.Empty(t, sel)
}

func TestDeselectSubtreeKeepsIndividuallySelectedExcludedFile(t *testing.T) {
	dir := selectionTree()

	sel := SelectSubtree(dir, Selection{}, testExcluded)
	// The user may still pick an excluded file by hand.
	sel["assets/icon.ico"] = true

	sel = DeselectSubtree(dir, sel, testExcluded)
	assert.True(t, sel["assets/icon.ico"])
	assert.False(t, sel["assets/docs/a.md"])
	assert.Equal(t, 100, SelectedTokens([]models.TreeNode{dir}, sel))
}

func TestSelectionOperationsDoNotMutateInput(t *testing.T) {
	dir := selectionTree()
	original := Selection{"assets/docs/a.md": true}

	_ = SelectSubtree(dir, original, testExcluded)
	_ = DeselectSubtree(dir, original, testExcluded)

	assert.Equal(t, Selection{"assets/docs/a.md": true}, original)
}

func TestExtensionExcluded(t *testing.T) {
	assert.True(t, ExtensionExcluded("img/logo.PNG", testExcluded))
	assert.False(t, ExtensionExcluded("main.go", testExcluded))
	assert.False(t, ExtensionExcluded("Makefile", testExcluded))
}
