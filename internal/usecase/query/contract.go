package query

import (
	"context"

	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// Repository is the stored-index contract for query execution.
type Repository interface {
	List(ctx context.Context) ([]result.Ref, error)
	Fields(ctx context.Context, ref result.Ref) (document.Document, error)
}
