package chi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
	"github.com/kailas-cloud/searchview/internal/render"
)

// ResponseWriter is the plugin contract for turning a query response into
// an HTTP body. ContentType must be callable independently of Write and
// side-effect free: the server reads it to set headers separately from
// body generation.
type ResponseWriter interface {
	Write(ctx context.Context, w io.Writer, resp *response.Response, req render.Request) error
	ContentType(req render.Request) string
}

// Registry maps wt parameter values to response writers.
type Registry struct {
	writers map[string]ResponseWriter
	def     string
}

// NewRegistry creates a writer registry with a default writer name.
func NewRegistry(defaultWriter string) *Registry {
	return &Registry{writers: make(map[string]ResponseWriter), def: defaultWriter}
}

// Register adds a writer under a name.
func (r *Registry) Register(name string, w ResponseWriter) {
	r.writers[name] = w
}

// Lookup returns the effective writer name and writer for a wt value; an
// empty wt selects the default.
func (r *Registry) Lookup(wt string) (string, ResponseWriter, error) {
	if wt == "" {
		wt = r.def
	}
	w, ok := r.writers[wt]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrUnknownWriter, wt)
	}
	return wt, w, nil
}

// TemplateWriter renders through the user-template renderer.
type TemplateWriter struct {
	renderer *render.Renderer
}

// NewTemplateWriter creates a template response writer.
func NewTemplateWriter(r *render.Renderer) *TemplateWriter {
	return &TemplateWriter{renderer: r}
}

// Write renders the response through the requested template.
func (t *TemplateWriter) Write(
	ctx context.Context, w io.Writer, resp *response.Response, req render.Request,
) error {
	return t.renderer.Render(ctx, w, resp, req)
}

// ContentType delegates to the renderer's content negotiation.
func (t *TemplateWriter) ContentType(req render.Request) string {
	return render.ContentType(req)
}

// JSONWriter emits the fixed JSON rendition of a query response.
type JSONWriter struct {
	docs render.FieldResolver
}

// NewJSONWriter creates the default JSON response writer.
func NewJSONWriter(docs render.FieldResolver) *JSONWriter {
	return &JSONWriter{docs: docs}
}

// ContentType is always JSON regardless of render parameters.
func (j *JSONWriter) ContentType(render.Request) string {
	return render.ContentTypeJSON
}

type jsonBody struct {
	ResponseHeader jsonHeader `json:"responseHeader"`
	Response       jsonResult `json:"response"`
}

type jsonHeader struct {
	Status int               `json:"status"`
	QTime  int64             `json:"QTime"`
	Params map[string]string `json:"params,omitempty"`
}

type jsonResult struct {
	NumFound int              `json:"numFound"`
	Start    int              `json:"start"`
	Docs     []map[string]any `json:"docs"`
}

// Write materializes the matched documents and encodes the response.
func (j *JSONWriter) Write(
	ctx context.Context, w io.Writer, resp *response.Response, req render.Request,
) error {
	seq := render.NewSequence(ctx, j.docs, resp.Results())
	materialized := seq.Drain()
	if err := seq.Err(); err != nil {
		return err
	}

	docs := make([]map[string]any, len(materialized))
	for i, doc := range materialized {
		item := make(map[string]any, len(doc.Fields())+1)
		item["id"] = doc.ID()
		for name, values := range doc.Fields() {
			if len(values) == 1 {
				item[name] = values[0]
			} else {
				item[name] = values
			}
		}
		docs[i] = item
	}

	body := jsonBody{
		ResponseHeader: jsonHeader{
			Status: 0,
			QTime:  resp.Elapsed().Milliseconds(),
			Params: resp.Params(),
		},
		Response: jsonResult{
			NumFound: resp.NumFound(),
			Start:    resp.Start(),
			Docs:     docs,
		},
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("encode json response: %w", err)
	}
	return nil
}
