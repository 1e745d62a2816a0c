package usecases

import (
	"context"
	"io"
	"strings"

	"github.com/opsportal/opsportal/internal/infrastructure/storage"
	"github.com/opsportal/opsportal/internal/shared/errors"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

// UploadedFile is a file received with the request, not yet stored.
type UploadedFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// resolveFileURL stores file when one was sent and otherwise falls back to the
// URL the caller supplied.
func resolveFileURL(ctx context.Context, store storage.FileStore, file *UploadedFile, fileURL string, log logger.Interface) (string, error) {
	if file == nil {
		fileURL = strings.TrimSpace(fileURL)
		if fileURL == "" {
			return "", errors.NewValidationError("file or file_url is required")
		}
		return fileURL, nil
	}
	url, err := store.Save(ctx, file.Name, file.Body, file.ContentType)
	if err != nil {
		log.Errorw("failed to store document file", "filename", file.Name, "error", err)
		return "", errors.NewInternalError("failed to store document file")
	}
	return url, nil
}
