package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/searchview/internal/domain/search/response"
)

// Content types emitted by the renderer.
const (
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Engine loads and executes named templates. internal/template provides
// the pongo2-backed implementation.
type Engine interface {
	Render(name string, data map[string]any) (string, error)
}

// Renderer executes a user-supplied template over a query response,
// optionally wrapping the output as a script-callback payload. A renderer
// holds no per-call state; the document sequence it builds is scoped to a
// single Render and discarded afterward.
type Renderer struct {
	engine Engine
	docs   FieldResolver
	types  *Resolver
	logger *zap.Logger
}

// New creates a renderer. A nil types resolver falls back to the stock
// registry.
func New(engine Engine, docs FieldResolver, types *Resolver, logger *zap.Logger) *Renderer {
	if types == nil {
		types = DefaultResolver()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{engine: engine, docs: docs, types: types, logger: logger}
}

// ContentType selects the response MIME type for a request: an explicit
// contentType parameter wins unconditionally, wrap mode implies JSON, and
// the default is text/html. Idempotent and side-effect free; the host
// calls it to set headers independently of body generation.
func ContentType(req Request) string {
	if ct, ok := req.ContentTypeOverride(); ok {
		return ct
	}
	if req.Wrapped() {
		return ContentTypeJSON
	}
	return ContentTypeHTML
}

// Render executes the template selected by req over resp and writes the
// output. The template output is buffered: nothing reaches w on failure.
func (r *Renderer) Render(
	ctx context.Context, w io.Writer, resp *response.Response, req Request,
) error {
	// Resolve the structured response object before any template executes.
	var structured Response
	if name, ok := req.ResponseType(); ok {
		resolved, err := r.types.Resolve(name)
		if err != nil {
			return err
		}
		if err := resolved.Bind(resp); err != nil {
			return fmt.Errorf("bind response type %q: %w", name, err)
		}
		structured = resolved
	}

	seq := NewSequence(ctx, r.docs, resp.Results())
	data := map[string]any{
		"raw":     newRaw(req, resp, seq),
		"results": seq,
		"params":  req.Params(),
	}
	if structured != nil {
		data["response"] = structured
	}

	out, err := r.engine.Render(req.Template(), data)
	// A store failure during lazy materialization outranks whatever the
	// engine reported: the render aborts with no partial output.
	if serr := seq.Err(); serr != nil {
		return serr
	}
	if err != nil {
		return err
	}

	if req.Wrapped() {
		out = req.WrapName() + "(" + jsonWrap(out) + ")"
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	r.logger.Debug("rendered response",
		zap.String("template", req.Template()),
		zap.Bool("wrapped", req.Wrapped()),
		zap.Int("bytes", len(out)),
	)
	return nil
}

// jsonWrap embeds text as the value of a single JSON string field named
// "result". This is literal substitution, not a JSON encoder: backslashes
// must be escaped before the characters whose escapes introduce
// backslashes, or the payload double-escapes.
func jsonWrap(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `{"result":"` + s + `"}`
}
