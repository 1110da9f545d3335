package response

import (
	"time"

	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// Response is the raw outcome of one query as handed to response writers:
// the matched references plus header values and the originating request
// parameters. Writers borrow it read-only for one render.
type Response struct {
	results  result.Set
	numFound int
	start    int
	elapsed  time.Duration
	params   map[string]string
}

// New creates a query response.
func New(
	results result.Set, numFound, start int,
	elapsed time.Duration, params map[string]string,
) *Response {
	return &Response{
		results: results, numFound: numFound, start: start,
		elapsed: elapsed, params: params,
	}
}

// Results returns the matched references in order.
func (r *Response) Results() result.Set { return r.results }

// NumFound returns the total number of matches before windowing.
func (r *Response) NumFound() int { return r.numFound }

// Start returns the window offset.
func (r *Response) Start() int { return r.start }

// Elapsed returns the query execution time.
func (r *Response) Elapsed() time.Duration { return r.elapsed }

// Params returns the originating request parameters. Callers must not
// mutate it.
func (r *Response) Params() map[string]string { return r.params }

// Param returns one request parameter value ("" when absent).
func (r *Response) Param(name string) string { return r.params[name] }
