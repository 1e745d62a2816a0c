// Package storage keeps uploaded SOP files. Object keys are derived from the file
// content, so re-uploading identical bytes yields the same URL.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/opsportal/opsportal/internal/shared/config"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

// FileStore persists a blob and returns the URL clients use to fetch it.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)
}

// New picks the backend named by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig, log logger.Interface) (FileStore, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		return NewLocalStore(cfg.LocalDir, cfg.PublicURL, log)
	case "s3":
		return NewS3Store(ctx, &cfg.S3, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// objectKey buffers r and names it sops/<sha256><ext>.
func objectKey(filename string, r io.Reader) (string, []byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("uploaded file is empty")
	}

	sum := sha256.Sum256(data)
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join("sops", hex.EncodeToString(sum[:])+ext), data, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
