package services

import (
	"path/filepath"
	"strings"

	"promptstudio/internal/models"
)

// Selection is an explicit, caller-owned set of selected paths. Directory
// paths in the set track expand/collapse and visual state only; token
// totals count file nodes exclusively. All operations return a new set and
// leave the input untouched.
type Selection map[string]bool

var excludedExtensions map[string]bool

// InitExclusions stores the configured excluded-extension set.
func InitExclusions(set map[string]bool) {
	excludedExtensions = set
}

// GetExclusions returns the configured excluded-extension set.
func GetExclusions() map[string]bool {
	return excludedExtensions
}

// Clone copies a selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for path, ok := range s {
		if ok {
			out[path] = true
		}
	}
	return out
}

// ToggleSubtree selects the whole subtree under dir, or deselects it if
// dir is already selected. Files whose extension is in excluded are never
// touched by a directory-level toggle.
func ToggleSubtree(dir models.TreeNode, sel Selection, excluded map[string]bool) Selection {
	if sel[dir.Path] {
		return DeselectSubtree(dir, sel, excluded)
	}
	return SelectSubtree(dir, sel, excluded)
}

// SelectSubtree adds dir and every descendant path to the selection,
// skipping excluded-extension files.
func SelectSubtree(dir models.TreeNode, sel Selection, excluded map[string]bool) Selection {
	out := sel.Clone()
	walkSubtree(dir, excluded, func(path string) {
		out[path] = true
	})
	return out
}

// DeselectSubtree removes dir and every descendant path from the
// selection, skipping excluded-extension files (an individually selected
// excluded file survives a directory-level toggle).
func DeselectSubtree(dir models.TreeNode, sel Selection, excluded map[string]bool) Selection {
	out := sel.Clone()
	walkSubtree(dir, excluded, func(path string) {
		delete(out, path)
	})
	return out
}

func walkSubtree(node models.TreeNode, excluded map[string]bool, visit func(string)) {
	if !node.IsDir() {
		if !ExtensionExcluded(node.Path, excluded) {
			visit(node.Path)
		}
		return
	}
	visit(node.Path)
	for _, child := range node.Children {
		walkSubtree(child, excluded, visit)
	}
}

// SelectedTokens sums the weights of every selected file node in the
// tree. Selected directories are not counted; their files already are.
func SelectedTokens(nodes []models.TreeNode, sel Selection) int {
	total := 0
	for _, node := range nodes {
		if node.IsDir() {
			total += SelectedTokens(node.Children, sel)
			continue
		}
		if sel[node.Path] {
			total += node.Tokens
		}
	}
	return total
}

// ExtensionExcluded reports whether path has an extension in the excluded
// set. Matching is case-insensitive.
func ExtensionExcluded(path string, excluded map[string]bool) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && excluded[ext]
}
