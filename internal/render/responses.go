package render

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// QueryResponse is the stock structured response object: the query header
// values and matched references in template-friendly form.
type QueryResponse struct {
	numFound int
	start    int
	elapsed  time.Duration
	params   map[string]string
	refs     []result.Ref
}

// Bind populates the response object from the raw query outcome.
func (q *QueryResponse) Bind(resp *response.Response) error {
	if resp == nil {
		return fmt.Errorf("%w: nil query response", domain.ErrTypeResolution)
	}
	set := resp.Results()
	q.numFound = resp.NumFound()
	q.start = resp.Start()
	q.elapsed = resp.Elapsed()
	q.params = resp.Params()
	q.refs = set.Refs()
	return nil
}

// NumFound returns the total number of matches before windowing.
func (q *QueryResponse) NumFound() int { return q.numFound }

// Start returns the window offset.
func (q *QueryResponse) Start() int { return q.start }

// ElapsedMillis returns the query time in milliseconds.
func (q *QueryResponse) ElapsedMillis() int64 { return q.elapsed.Milliseconds() }

// Params returns the originating request parameters.
func (q *QueryResponse) Params() map[string]string { return q.params }

// Refs returns the matched references in order.
func (q *QueryResponse) Refs() []result.Ref { return q.refs }

// Size returns the number of references in the window.
func (q *QueryResponse) Size() int { return len(q.refs) }
