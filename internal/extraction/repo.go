package extraction

import "context"

// RawRepo persists full extraction payloads, one per user, replaced on every
// successful extraction.
type RawRepo interface {
	Upsert(ctx context.Context, rec RawExtraction) error
}

// ProfileRepo persists canonical personal-data rows keyed by user ID.
// GetByUserID returns ErrNotFound when no row exists.
type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (PersonalData, error)
	Insert(ctx context.Context, p PersonalData) (PersonalData, error)
	Update(ctx context.Context, p PersonalData) (PersonalData, error)
}
