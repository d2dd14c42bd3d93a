package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-rental/internal/config"
)

const (
	FolderPaymentProofs = "payment-proofs"
	FolderStudios       = "studios"
	FolderStudioThumbs  = "studios/thumbs"
)

// Storage guarda arquivos por caminho relativo (folder/nome).
type Storage interface {
	Put(ctx context.Context, folder, name, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, path string) error
}

func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Storage(ctx, S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "local", "":
		return NewLocalStorage(cfg.StorageLocalDir)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// ObjectName gera um nome único preservando a extensão.
func ObjectName(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return uuid.NewString() + ext
}

func objectKey(folder, name string) string {
	return path.Join(strings.Trim(folder, "/"), path.Base(name))
}
