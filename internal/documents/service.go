package documents

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"kyc-backend/internal/shared/storage/object"
)

// ErrInvalidInput indicates a caller-supplied value failed validation.
var ErrInvalidInput = errors.New("invalid input")

// Service stores ID-document images and hands back URLs the extraction
// endpoint accepts as imageUrl.
type Service struct {
	Store         object.ObjectStore
	PublicBaseURL string
}

// Upload saves the image to object storage and returns its public locator.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if userID == "" || fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	return Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		ImageURL:   s.PublicBaseURL + "/api/v1/files/" + storageKey,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Open streams a stored image by storage key.
func (s *Service) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if storageKey == "" {
		return nil, ErrInvalidInput
	}
	return s.Store.Open(ctx, storageKey)
}
