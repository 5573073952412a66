package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// Local writes uploads under Root and serves them from URLPrefix.
type Local struct {
	Root      string
	URLPrefix string
}

func NewLocal(root string) *Local {
	return &Local{Root: root, URLPrefix: "/uploads"}
}

func (l *Local) Save(_ context.Context, folder, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(l.Root, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := objectName(originalName)
	dest, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return path.Join(l.URLPrefix, folder, name), nil
}
