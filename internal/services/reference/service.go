package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/dacite/internal/database"
	"github.com/thenoetrevino/dacite/internal/models"
)

// Service defines all reference-related business operations
type Service interface {
	ListReferences(ctx context.Context) ([]*models.Reference, error)
	GetReference(ctx context.Context, id int) (*models.Reference, error)
	CreateReference(ctx context.Context, req CreateReferenceRequest) (*models.Reference, error)
}

// CreateReferenceRequest encapsulates data for creating a reference
type CreateReferenceRequest struct {
	PubYear int
	Author  string
	Ref     string
	DOI     string // optional
	URL     string // optional
}

// Reference converts the request to a draft reference with trimmed fields
func (r CreateReferenceRequest) Reference() models.Reference {
	return models.Reference{
		PubYear: r.PubYear,
		Author:  strings.TrimSpace(r.Author),
		Ref:     strings.TrimSpace(r.Ref),
		DOI:     strings.TrimSpace(r.DOI),
		URL:     strings.TrimSpace(r.URL),
	}
}

type service struct {
	repo database.ReferenceRepository
}

// NewService creates a new reference service
func NewService(repo database.ReferenceRepository) Service {
	return &service{repo: repo}
}

// ListReferences returns every reference, ordered for the picker
func (s *service) ListReferences(ctx context.Context) ([]*models.Reference, error) {
	refs, err := s.repo.ListReferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	return refs, nil
}

// GetReference retrieves one reference
func (s *service) GetReference(ctx context.Context, id int) (*models.Reference, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	ref, err := s.repo.GetReferenceByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// CreateReference validates and stores a new reference
func (s *service) CreateReference(ctx context.Context, req CreateReferenceRequest) (*models.Reference, error) {
	ref := req.Reference()
	if err := Validate(ref); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateReference(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to create reference: %w", err)
	}

	slog.Info("reference created", "id", created.ID, "label", created.Label())
	return created, nil
}

// Validate checks the fields of a reference before it is stored
func Validate(ref models.Reference) error {
	if strings.TrimSpace(ref.Author) == "" {
		return ErrEmptyAuthor
	}
	if ref.PubYear < models.MinPubYear || ref.PubYear > models.MaxPubYear {
		return ErrInvalidYear
	}
	if strings.TrimSpace(ref.Ref) == "" {
		return ErrEmptyCitation
	}
	return ValidateURL(ref.URL)
}

// ValidateURL accepts an empty URL or one with an http(s) scheme
func ValidateURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return nil
	}
	return ErrInvalidURL
}
