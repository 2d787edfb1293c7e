package app

import (
	"context"
	"fmt"

	"github.com/heartmarshall/dossier-backend/internal/adapter/storage/memory"
	s3store "github.com/heartmarshall/dossier-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/dossier-backend/internal/config"
)

// blobStore is what the artifact service and the readiness probe need from
// a storage driver.
type blobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

func newBlobStore(cfg config.StorageConfig) (blobStore, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "s3":
		return s3store.New(s3store.NewClient(cfg), cfg.Bucket, cfg.KeyPrefix), nil
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
}
