package document

import (
	"context"

	domdoc "github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// Repository is the storage contract for document maintenance.
type Repository interface {
	Fields(ctx context.Context, ref result.Ref) (domdoc.Document, error)
	Upsert(ctx context.Context, doc domdoc.Document) error
	Delete(ctx context.Context, id string) error
}
