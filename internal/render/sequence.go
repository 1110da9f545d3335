package render

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// FieldResolver resolves stored fields for one document reference.
type FieldResolver interface {
	Fields(ctx context.Context, ref result.Ref) (document.Document, error)
}

// Sequence lazily materializes documents for a result set, one per step,
// in the set's original order. It is single-pass and forward-only: a
// yielded document is never yielded again and the sequence cannot be
// restarted. It is scoped to one render call and must not be shared.
type Sequence struct {
	ctx      context.Context // request-scoped, same lifetime as the sequence
	resolver FieldResolver
	refs     []result.Ref
	pos      int
	err      error
}

// NewSequence creates a lazy document sequence over a result set.
func NewSequence(ctx context.Context, resolver FieldResolver, set result.Set) *Sequence {
	return &Sequence{ctx: ctx, resolver: resolver, refs: set.Refs()}
}

// HasNext reports whether another document remains. False after a
// resolution failure.
func (s *Sequence) HasNext() bool {
	return s.err == nil && s.pos < len(s.refs)
}

// Next materializes the next document by resolving its stored fields.
// Exactly one document is resolved per call; nothing is cached.
func (s *Sequence) Next() (document.Document, error) {
	if s.err != nil {
		return document.Document{}, s.err
	}
	if s.pos >= len(s.refs) {
		return document.Document{}, fmt.Errorf("%w: sequence exhausted", domain.ErrRender)
	}

	ref := s.refs[s.pos]
	s.pos++

	doc, err := s.resolver.Fields(s.ctx, ref)
	if err != nil {
		s.err = fmt.Errorf("%w: resolve stored fields for %q: %w", domain.ErrRender, ref, err)
		return document.Document{}, s.err
	}
	return doc, nil
}

// Remove is unsupported: the sequence borrows the result set and never
// mutates it. It does nothing.
func (s *Sequence) Remove() {}

// Err returns the first resolution failure, if any. Exhaustion is not a
// failure.
func (s *Sequence) Err() error { return s.err }

// Drain materializes every remaining document eagerly, consuming the
// sequence. Templates iterating with a for tag use this; a resolution
// failure stops the drain and is retained for Err.
func (s *Sequence) Drain() []document.Document {
	var docs []document.Document
	for s.HasNext() {
		doc, err := s.Next()
		if err != nil {
			return docs
		}
		docs = append(docs, doc)
	}
	return docs
}
