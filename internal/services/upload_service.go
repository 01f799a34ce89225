package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"petbnb_backend/internal/services/dto"
	"petbnb_backend/internal/storage"
	"petbnb_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	Upload(ctx context.Context, userID string, file *multipart.FileHeader, category string) (*dto.UploadResponse, error)
}

type UploadServiceImpl struct {
	storage      storage.Storage
	maxSize      int64
	allowedTypes map[string]bool
}

func NewUploadService(store storage.Storage, maxSize int64, allowedTypes []string) UploadService {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(t)] = true
	}
	return &UploadServiceImpl{
		storage:      store,
		maxSize:      maxSize,
		allowedTypes: allowed,
	}
}

// Upload validates and stores a multipart file, returning its public URL.
func (s *UploadServiceImpl) Upload(ctx context.Context, userID string, file *multipart.FileHeader, category string) (*dto.UploadResponse, error) {
	if file.Size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !s.allowedTypes[contentType] {
		return nil, apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	if category == "" {
		category = "uploads"
	}
	ext := filepath.Ext(file.Filename)
	path := fmt.Sprintf("%s/%s/%d_%s%s", category, userID, time.Now().Unix(), uuid.NewString(), ext)

	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		URL:      url,
		Filename: file.Filename,
		Size:     file.Size,
	}, nil
}
