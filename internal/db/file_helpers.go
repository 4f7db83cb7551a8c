package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"promptstudio/internal/models"
)

func ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var files []models.FileRecord
	err := Conn.SelectContext(ctx, &files, "SELECT id, path, content, created_at FROM files ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}

	return files, nil
}

func CreateFile(ctx context.Context, path, content string) (*models.FileRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var file models.FileRecord
	err := Conn.GetContext(ctx, &file,
		"INSERT INTO files (id, path, content) VALUES ($1, $2, $3) RETURNING id, path, content, created_at",
		uuid.New().String(), path, content)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}

	return &file, nil
}

func UpdateFile(ctx context.Context, id, path, content string) (*models.FileRecord, error) {
	if Conn == nil {
		return nil, ErrNotConfigured
	}

	var file models.FileRecord
	err := Conn.GetContext(ctx, &file,
		"UPDATE files SET path = $2, content = $3 WHERE id = $1 RETURNING id, path, content, created_at",
		id, path, content)
	if err != nil {
		return nil, fmt.Errorf("error updating file: %w", err)
	}

	return &file, nil
}

func DeleteFile(ctx context.Context, id string) error {
	if Conn == nil {
		return ErrNotConfigured
	}

	res, err := Conn.ExecContext(ctx, "DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted file: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("file %s not found", id)
	}

	return nil
}
