package extraction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"kyc-backend/internal/llm"
)

// Action tags describing which profile branch was taken.
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
)

// Request carries the inputs for one extraction invocation.
type Request struct {
	ImageURL string
	IDType   string
	UserID   string
}

// Result is the outcome of a successful extraction pipeline run.
type Result struct {
	Fields  ExtractedFields
	Action  string
	Profile PersonalData
}

// Service runs the identity-document reconciliation pipeline: validate the
// request, call the vision API, parse and map the fields, upsert the raw
// extraction, then insert or update the personal-data profile.
type Service struct {
	Vision   llm.VisionClient
	Raw      RawRepo
	Profiles ProfileRepo
}

// Process executes the pipeline for one request. Each stage failure maps to
// one member of the error taxonomy; nothing is retried and nothing written
// before a failing stage is rolled back.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return Result{}, &MissingParameterError{Param: "imageUrl"}
	}
	if strings.TrimSpace(req.IDType) == "" {
		return Result{}, &MissingParameterError{Param: "idType"}
	}
	if strings.TrimSpace(req.UserID) == "" {
		return Result{}, &MissingParameterError{Param: "userId"}
	}

	raw, err := s.Vision.ExtractDocument(ctx, llm.ExtractInput{
		ImageURL:     req.ImageURL,
		DocumentType: req.IDType,
	})
	if err != nil {
		return Result{}, &InferenceError{Err: err}
	}

	fields, err := ParseFields(raw)
	if err != nil {
		return Result{}, err
	}

	rec := RawExtraction{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Fields:         fields,
		ImageURL:       req.ImageURL,
		IDType:         CanonicalDocType(req.IDType),
		OriginalIDType: req.IDType,
		ExtractedAt:    time.Now().UTC(),
	}
	if err := s.Raw.Upsert(ctx, rec); err != nil {
		return Result{}, &PersistenceError{Op: "raw upsert", Err: err}
	}

	payload := buildProfilePayload(req.UserID, fields)

	_, err = s.Profiles.GetByUserID(ctx, req.UserID)
	switch {
	case err == nil:
		stored, err := s.Profiles.Update(ctx, payload)
		if err != nil {
			return Result{}, &PersistenceError{Op: "profile update", Err: err}
		}
		return Result{Fields: fields, Action: ActionUpdated, Profile: stored}, nil
	case errors.Is(err, ErrNotFound):
		stored, err := s.Profiles.Insert(ctx, payload)
		if err != nil {
			return Result{}, &PersistenceError{Op: "profile insert", Err: err}
		}
		return Result{Fields: fields, Action: ActionInserted, Profile: stored}, nil
	default:
		return Result{}, &PersistenceError{Op: "profile lookup", Err: err}
	}
}
