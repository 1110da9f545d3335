package render

import (
	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
)

// Raw gives templates unprocessed access to the request parameters, the
// response header values, and the lazy document sequence, so a template
// can read arbitrary fields without the renderer pre-extracting them.
type Raw struct {
	req  Request
	resp *response.Response
	seq  *Sequence
}

func newRaw(req Request, resp *response.Response, seq *Sequence) *Raw {
	return &Raw{req: req, resp: resp, seq: seq}
}

// Param returns one originating request parameter ("" when absent).
func (r *Raw) Param(name string) string { return r.req.Param(name) }

// Params returns the raw request parameters.
func (r *Raw) Params() map[string]string { return r.req.Params() }

// NumFound returns the total number of matches before windowing.
func (r *Raw) NumFound() int { return r.resp.NumFound() }

// Start returns the window offset.
func (r *Raw) Start() int { return r.resp.Start() }

// ElapsedMillis returns the query time in milliseconds.
func (r *Raw) ElapsedMillis() int64 { return r.resp.Elapsed().Milliseconds() }

// Results returns the lazy document sequence itself for templates that
// step through it manually.
func (r *Raw) Results() *Sequence { return r.seq }

// Documents drains the remaining sequence for for-tag iteration. The
// sequence stays single-pass: a second call yields only what is left.
func (r *Raw) Documents() []document.Document { return r.seq.Drain() }
