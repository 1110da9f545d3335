package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// Service executes queries over the stored index. Matching is a
// case-insensitive substring scan over stored field values; ordering is
// the sorted reference order the repository returns.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a query service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Execute runs a query and returns the raw response: the matched
// references windowed by start/rows plus header values. Stored fields are
// not retained here; response writers resolve them lazily per document.
func (s *Service) Execute(ctx context.Context, req Request) (*response.Response, error) {
	startedAt := time.Now()

	refs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	matched := refs
	if req.Query() != "*" {
		needle := strings.ToLower(req.Query())
		matched = make([]result.Ref, 0, len(refs))
		for _, ref := range refs {
			doc, err := s.repo.Fields(ctx, ref)
			if err != nil {
				// A document deleted between scan and fetch is not a match.
				if errors.Is(err, domain.ErrDocumentNotFound) {
					continue
				}
				return nil, fmt.Errorf("resolve %q: %w", ref, err)
			}
			if matchDoc(doc, needle) {
				matched = append(matched, ref)
			}
		}
	}

	numFound := len(matched)
	windowed := window(matched, req.Start(), req.Rows())
	elapsed := time.Since(startedAt)

	s.logger.Debug("query executed",
		zap.String("q", req.Query()),
		zap.Int("num_found", numFound),
		zap.Int("returned", len(windowed)),
		zap.Duration("elapsed", elapsed),
	)

	return response.New(result.NewSet(windowed), numFound, req.Start(), elapsed, req.Params()), nil
}

func matchDoc(doc document.Document, needle string) bool {
	for _, values := range doc.Fields() {
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}

func window(refs []result.Ref, start, rows int) []result.Ref {
	if start >= len(refs) {
		return nil
	}
	end := start + rows
	if end > len(refs) {
		end = len(refs)
	}
	return refs[start:end]
}
