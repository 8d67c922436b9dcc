package extraction

import (
	"context"
	"sync"
	"time"
)

// MemoryRawRepo is an in-memory implementation of RawRepo.
type MemoryRawRepo struct {
	mu   sync.RWMutex
	data map[string]RawExtraction // userId -> extraction
}

// NewMemoryRawRepo constructs a MemoryRawRepo.
func NewMemoryRawRepo() *MemoryRawRepo {
	return &MemoryRawRepo{data: make(map[string]RawExtraction)}
}

// Upsert stores or fully replaces the extraction for a user.
func (r *MemoryRawRepo) Upsert(ctx context.Context, rec RawExtraction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = rec
	return nil
}

// GetByUserID returns the stored extraction for a user, if any.
func (r *MemoryRawRepo) GetByUserID(ctx context.Context, userID string) (RawExtraction, bool) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[userID]
	return rec, ok
}

// MemoryProfileRepo is an in-memory implementation of ProfileRepo.
type MemoryProfileRepo struct {
	mu   sync.RWMutex
	data map[string]PersonalData // userId -> profile
}

// NewMemoryProfileRepo constructs a MemoryProfileRepo.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{data: make(map[string]PersonalData)}
}

// GetByUserID returns the profile for a user or ErrNotFound.
func (r *MemoryProfileRepo) GetByUserID(ctx context.Context, userID string) (PersonalData, error) {
	if err := ctx.Err(); err != nil {
		return PersonalData{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[userID]
	if !ok {
		return PersonalData{}, ErrNotFound
	}
	return p, nil
}

// Insert creates a profile for a user.
func (r *MemoryProfileRepo) Insert(ctx context.Context, p PersonalData) (PersonalData, error) {
	if err := ctx.Err(); err != nil {
		return PersonalData{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.data[p.UserID] = p
	return p, nil
}

// Update overwrites required fields and merges optional fields into the
// stored profile.
func (r *MemoryProfileRepo) Update(ctx context.Context, p PersonalData) (PersonalData, error) {
	if err := ctx.Err(); err != nil {
		return PersonalData{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prior, ok := r.data[p.UserID]
	if !ok {
		return PersonalData{}, ErrNotFound
	}
	if p.MiddleName == nil {
		p.MiddleName = prior.MiddleName
	}
	if p.ProvinceOfOrigin == nil {
		p.ProvinceOfOrigin = prior.ProvinceOfOrigin
	}
	if p.SecondaryPhone == nil {
		p.SecondaryPhone = prior.SecondaryPhone
	}
	if p.SecondaryEmail == nil {
		p.SecondaryEmail = prior.SecondaryEmail
	}
	p.CreatedAt = prior.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.data[p.UserID] = p
	return p, nil
}
