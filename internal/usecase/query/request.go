package query

import (
	"fmt"

	"github.com/kailas-cloud/searchview/internal/domain"
)

// Query parameter limits.
const (
	DefaultRows = 10
	MaxRows     = 100
)

// Request is a validated query. params carries the raw request parameters
// for passthrough to response writers.
type Request struct {
	query  string
	start  int
	rows   int
	params map[string]string
}

// NewRequest validates query parameters. "*" matches every document.
// Defaults: rows=10, capped at 100.
func NewRequest(query string, start, rows int, params map[string]string) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("%w: q is required", domain.ErrInvalidQuery)
	}
	if start < 0 {
		return Request{}, fmt.Errorf("%w: start must be >= 0", domain.ErrInvalidQuery)
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	if rows > MaxRows {
		rows = MaxRows
	}
	return Request{query: query, start: start, rows: rows, params: params}, nil
}

// Query returns the query text.
func (r *Request) Query() string { return r.query }

// Start returns the window offset.
func (r *Request) Start() int { return r.start }

// Rows returns the window size.
func (r *Request) Rows() int { return r.rows }

// Params returns the raw request parameters.
func (r *Request) Params() map[string]string { return r.params }
