// Package media exposes presigned-URL based upload, download, and deletion
// of post images and attachments. All endpoints sit behind the auth gate.
package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lunblog/internal/storage"
)

const (
	uploadTTL   = 15 * time.Minute
	downloadTTL = 1 * time.Hour
)

// Service handles business logic for media operations
type Service struct {
	storage storage.Service
}

// NewService creates a new media service
func NewService(storage storage.Service) *Service {
	return &Service{storage: storage}
}

// ValidateFilename rejects empty, oversized, or path-traversing filenames.
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if len(filename) > MaxFilenameLength {
		return fmt.Errorf("filename too long (max %d characters)", MaxFilenameLength)
	}
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("filename contains invalid characters")
	}
	if filepath.Ext(filename) == "" {
		return fmt.Errorf("filename must have an extension")
	}
	return nil
}

// ValidateContentType checks the content type against the allow list.
func ValidateContentType(contentType string) error {
	if contentType == "" {
		return fmt.Errorf("content type cannot be empty")
	}
	if !AllowedContentTypes[contentType] {
		return fmt.Errorf("content type %s is not allowed", contentType)
	}
	return nil
}

// CreateUploadURL validates the request and returns a presigned upload URL
// under a fresh object key.
func (s *Service) CreateUploadURL(ctx context.Context, req *UploadURLRequest) (*UploadURLResponse, error) {
	if err := ValidateFilename(req.Filename); err != nil {
		return nil, fmt.Errorf("invalid filename: %w", err)
	}
	if err := ValidateContentType(req.ContentType); err != nil {
		return nil, fmt.Errorf("invalid content type: %w", err)
	}

	fileKey := fmt.Sprintf("%s-%s", uuid.New().String(), req.Filename)

	uploadURL, err := s.storage.PresignUpload(ctx, fileKey, req.ContentType, uploadTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		FileKey:   fileKey,
		ExpiresAt: time.Now().Add(uploadTTL).Unix(),
	}, nil
}

// CreateDownloadURL returns a presigned download URL for an object key.
func (s *Service) CreateDownloadURL(ctx context.Context, req *DownloadURLRequest) (*DownloadURLResponse, error) {
	downloadURL, err := s.storage.PresignDownload(ctx, req.FileKey, downloadTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate download URL: %w", err)
	}

	return &DownloadURLResponse{
		DownloadURL: downloadURL,
		ExpiresAt:   time.Now().Add(downloadTTL).Unix(),
	}, nil
}

// Delete removes an object from storage.
func (s *Service) Delete(ctx context.Context, fileKey string) error {
	if fileKey == "" {
		return fmt.Errorf("file key cannot be empty")
	}
	return s.storage.Delete(ctx, fileKey)
}
