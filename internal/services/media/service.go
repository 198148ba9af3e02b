package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrValidation      = errors.New("media validation error")
	ErrTooLarge        = errors.New("media file exceeds the upload limit")
	ErrUnsupportedType = errors.New("media content type is not allowed")
)

const defaultPresignTTL = 5 * time.Minute

// allowedCategories mirrors the admin screens that carry an image picker.
var allowedCategories = map[string]bool{
	"events":   true,
	"tickets":  true,
	"products": true,
	"emcees":   true,
	"receipts": true,
}

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service handles the image uploads attached to catalog entries and the
// payment receipts shown on the moderation review dialog.
type Service struct {
	storage        ObjectStorage
	maxUploadBytes int64
	presignTTL     time.Duration
}

type Upload struct {
	Key string
	URL string
}

func NewService(storage ObjectStorage, maxUploadBytes int64, presignTTL time.Duration) *Service {
	if presignTTL <= 0 {
		presignTTL = defaultPresignTTL
	}
	return &Service{
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
		presignTTL:     presignTTL,
	}
}

func (s *Service) Upload(ctx context.Context, category, fileName, contentType string, body io.Reader, size int64) (Upload, error) {
	if s.storage == nil {
		return Upload{}, fmt.Errorf("media storage is not configured")
	}
	if body == nil || size <= 0 {
		return Upload{}, ErrValidation
	}
	if !allowedCategories[category] {
		return Upload{}, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if s.maxUploadBytes > 0 && size > s.maxUploadBytes {
		return Upload{}, ErrTooLarge
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	defaultExt, ok := allowedContentTypes[contentType]
	if !ok {
		return Upload{}, ErrUnsupportedType
	}

	key := buildObjectKey(category, fileName, defaultExt)

	if err := s.storage.Put(ctx, key, body, size, contentType); err != nil {
		return Upload{}, fmt.Errorf("put object: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return Upload{}, fmt.Errorf("presign object url: %w", err)
	}

	return Upload{Key: key, URL: url}, nil
}

// ResolveURL signs a short-lived download link for a stored object key.
func (s *Service) ResolveURL(ctx context.Context, key string) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("media storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return "", ErrValidation
	}
	url, err := s.storage.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("presign object url: %w", err)
	}
	return url, nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	if s.storage == nil {
		return fmt.Errorf("media storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return ErrValidation
	}
	return s.storage.Delete(ctx, key)
}

func buildObjectKey(category, fileName, defaultExt string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if ext == "" {
		ext = defaultExt
	}
	return fmt.Sprintf("%s/%s%s", category, uuid.NewString(), ext)
}
