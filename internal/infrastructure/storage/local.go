package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/opsportal/opsportal/internal/shared/logger"
)

type LocalStore struct {
	dir       string
	publicURL string
	logger    logger.Interface
}

func NewLocalStore(dir, publicURL string, log logger.Interface) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir, publicURL: publicURL, logger: log}, nil
}

func (s *LocalStore) Save(_ context.Context, filename string, r io.Reader, _ string) (string, error) {
	key, data, err := objectKey(filename, r)
	if err != nil {
		return "", err
	}

	// strip the "sops/" prefix: dir already points at the sop root
	target := filepath.Join(s.dir, filepath.Base(key))
	if _, err := os.Stat(target); err == nil {
		return joinURL(s.publicURL, filepath.Base(key)), nil
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.Infow("stored sop file", "path", target, "bytes", len(data))
	return joinURL(s.publicURL, filepath.Base(key)), nil
}
