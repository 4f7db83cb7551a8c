package models

import "time"

// PromptCategory classifies a saved prompt snippet. The renderer uses the
// category to place a selected snippet into the matching document section.
type PromptCategory string

const (
	CategoryPrompt       PromptCategory = "prompt"
	CategoryPRD          PromptCategory = "prd"
	CategoryInstructions PromptCategory = "instructions"
	CategoryExample      PromptCategory = "example"
)

// ValidCategory reports whether s is one of the known prompt categories.
func ValidCategory(s string) bool {
	switch PromptCategory(s) {
	case CategoryPrompt, CategoryPRD, CategoryInstructions, CategoryExample:
		return true
	}
	return false
}

// PromptRecord is a user-authored prompt snippet stored in the database.
type PromptRecord struct {
	ID        string         `json:"id" db:"id"`
	Filename  string         `json:"filename" db:"filename"`
	Content   string         `json:"content" db:"content"`
	Category  PromptCategory `json:"category" db:"category"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// FileRecord is a user-saved file stored in the database. Path is unique
// and is surfaced in the tree under the db/ group.
type FileRecord struct {
	ID        string    `json:"id" db:"id"`
	Path      string    `json:"path" db:"path"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
