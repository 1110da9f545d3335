package document

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/searchview/internal/domain"
	domdoc "github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// Service maintains stored documents for the ingest API.
type Service struct {
	repo Repository
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert validates and stores a document.
func (s *Service) Upsert(
	ctx context.Context, id string, fields map[string][]string,
) (domdoc.Document, error) {
	if id == "" {
		return domdoc.Document{}, fmt.Errorf("%w: id is required", domain.ErrInvalidDocument)
	}
	if len(fields) == 0 {
		return domdoc.Document{}, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidDocument)
	}
	for name, values := range fields {
		if name == "" {
			return domdoc.Document{}, fmt.Errorf("%w: empty field name", domain.ErrInvalidDocument)
		}
		if len(values) == 0 {
			return domdoc.Document{}, fmt.Errorf("%w: field %q has no values", domain.ErrInvalidDocument, name)
		}
	}

	doc := domdoc.New(id, fields)
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("upsert %q: %w", id, err)
	}
	return doc, nil
}

// Get returns a stored document by id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Fields(ctx, result.Ref(id))
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get %q: %w", id, err)
	}
	return doc, nil
}

// Delete removes a stored document by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	return nil
}
