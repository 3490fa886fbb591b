package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naufalhakim/hr-management/internal"
)

// Service handles document storage business logic.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

func NewService(storage Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ListDocuments returns the full unfiltered object listing.
func (s *Service) ListDocuments(ctx context.Context) ([]Descriptor, error) {
	docs, err := s.storage.List(ctx)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, internal.NewStoreError("failed to fetch documents", internal.ErrCodeObjectStoreFailure, err)
	}
	return docs, nil
}

// UploadDocument stores the content under a fresh random key that
// preserves the original extension, and attaches the original filename,
// type tag, description and upload time as metadata.
func (s *Service) UploadDocument(ctx context.Context, filename, contentType string, body io.Reader, size int64, docType, description string) (string, error) {
	if filename == "" {
		return "", internal.NewValidationError("no file selected", internal.ErrCodeValidationFailed)
	}
	if docType == "" {
		docType = DefaultDocumentType
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	metadata := map[string]string{
		MetaOriginalFilename: filename,
		MetaDocumentType:     docType,
		MetaDescription:      description,
		MetaUploadDate:       time.Now().Format(time.RFC3339),
	}

	if err := s.storage.Put(ctx, key, body, size, contentType, metadata); err != nil {
		s.logger.Error("failed to upload document", "error", err, "key", key)
		return "", internal.NewStoreError("failed to upload document", internal.ErrCodeObjectStoreFailure, err)
	}

	s.logger.Info("document uploaded", "key", key, "document_type", docType, "size", size)
	return key, nil
}

// DownloadDocument fetches the blob by key and recovers the original
// filename from metadata, falling back to the raw key if the metadata
// is missing.
func (s *Service) DownloadDocument(ctx context.Context, key string) (*Download, error) {
	obj, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, internal.ErrDocumentNotFound
		}
		s.logger.Error("failed to download document", "error", err, "key", key)
		return nil, internal.NewStoreError("failed to download document", internal.ErrCodeObjectStoreFailure, err)
	}

	filename := obj.Metadata[MetaOriginalFilename]
	if filename == "" {
		filename = key
	}

	return &Download{Object: obj, Filename: filename}, nil
}

// DeleteDocument removes the object unconditionally.
func (s *Service) DeleteDocument(ctx context.Context, key string) error {
	if err := s.storage.Remove(ctx, key); err != nil {
		s.logger.Error("failed to delete document", "error", err, "key", key)
		return internal.NewStoreError("failed to delete document", internal.ErrCodeObjectStoreFailure, err)
	}

	s.logger.Info("document deleted", "key", key)
	return nil
}
