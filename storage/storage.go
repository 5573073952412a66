package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrExtension = errors.New("file type not allowed")

// Storage persists uploaded files and returns the URL they are served from.
type Storage interface {
	Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error)
}

var (
	ImageExts    = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
	DocumentExts = []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".zip", ".txt", ".png", ".jpg", ".jpeg"}
)

// CheckExt validates the extension of name against allowed (case-insensitive).
func CheckExt(name string, allowed []string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return ErrExtension
}

func objectName(originalName string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
}
