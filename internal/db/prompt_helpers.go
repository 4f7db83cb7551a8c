package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"promptstudio/internal/models"
)

func ListPrompts(ctx context.Context) ([]models.PromptRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var prompts []models.PromptRecord
	err := Conn.SelectContext(ctx, &prompts, "SELECT id, filename, content, category, created_at FROM prompts ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("error listing prompts: %w", err)
	}

	return prompts, nil
}

func CreatePrompt(ctx context.Context, filename, content string, category models.PromptCategory) (*models.PromptRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var prompt models.PromptRecord
	err := Conn.GetContext(ctx, &prompt,
		"INSERT INTO prompts (id, filename, content, category) VALUES ($1, $2, $3, $4) RETURNING id, filename, content, category, created_at",
		uuid.New().String(), filename, content, category)
	if err != nil {
		return nil, fmt.Errorf("error creating prompt: %w", err)
	}

	return &prompt, nil
}

func UpdatePrompt(ctx context.Context, id, filename, content string, category models.PromptCategory) (*models.PromptRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var prompt models.PromptRecord
	err := Conn.GetContext(ctx, &prompt,
		"UPDATE prompts SET filename = $2, content = $3, category = $4 WHERE id = $1 RETURNING id, filename, content, category, created_at",
		id, filename, content, category)
	if err != nil {
		return nil, fmt.Errorf("error updating prompt: %w", err)
	}

	return &prompt, nil
}

func DeletePrompt(ctx context.Context, id string) error {
	if Conn == nil {
		return ErrNotConfigured
	}

	res, err := Conn.ExecContext(ctx, "DELETE FROM prompts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting prompt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted prompt: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("prompt %s not found", id)
	}

	return nil
}
