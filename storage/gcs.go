package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
)

type GCS struct {
	client *storage.Client
	bucket string
}

// NewGCS uses application default credentials.
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error) {
	key := path.Join(folder, objectName(originalName))
	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	if ct := mime.TypeByExtension(filepath.Ext(originalName)); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs upload %s: %w", key, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, key), nil
}

func (g *GCS) Close() error { return g.client.Close() }
