package chi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/searchview/internal/db"
	"github.com/kailas-cloud/searchview/internal/domain"
	domdoc "github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/metrics"
	"github.com/kailas-cloud/searchview/internal/render"
	documentuc "github.com/kailas-cloud/searchview/internal/usecase/document"
	queryuc "github.com/kailas-cloud/searchview/internal/usecase/query"
)

// Error codes returned to clients.
const (
	codeBadRequest     = "bad_request"
	codeNotFound       = "not_found"
	codeTemplateError  = "template_error"
	codeTypeResolution = "type_resolution_error"
	codeRenderError    = "render_error"
	codeUnknownWriter  = "unknown_writer"
	codeInternalError  = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server wires the HTTP API: the select endpoint with pluggable response
// writers plus the minimal document maintenance API.
type Server struct {
	query   *queryuc.Service
	docs    *documentuc.Service
	writers *Registry
	pinger  db.Pinger
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	query *queryuc.Service,
	docs *documentuc.Service,
	writers *Registry,
	pinger db.Pinger,
	logger *zap.Logger,
) *Server {
	return &Server{query: query, docs: docs, writers: writers, pinger: pinger, logger: logger}
}

// Routes builds the chi route tree.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/select", s.Select)
	r.Route("/docs/{id}", func(r chi.Router) {
		r.Put("/", s.UpsertDocument)
		r.Get("/", s.GetDocument)
		r.Delete("/", s.DeleteDocument)
	})
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)
	return r
}

// Select handles GET /select: execute the query, pick a response writer by
// the wt parameter, and emit the rendered body. The Content-Type header is
// taken from the writer before the body is written; the body itself is
// buffered so a failed render produces an error response, never partial
// output.
func (s *Server) Select(w http.ResponseWriter, r *http.Request) {
	params := flattenQuery(r.URL.Query())

	start, err := intParam(params, "start", 0)
	if err != nil {
		s.handleError(w, err)
		return
	}
	rows, err := intParam(params, "rows", 0)
	if err != nil {
		s.handleError(w, err)
		return
	}

	qreq, err := queryuc.NewRequest(params["q"], start, rows, params)
	if err != nil {
		s.handleError(w, err)
		return
	}

	wtName, writer, err := s.writers.Lookup(params["wt"])
	if err != nil {
		s.handleError(w, err)
		return
	}
	rreq := render.FromQuery(r.URL.Query())

	resp, err := s.query.Execute(r.Context(), qreq)
	if err != nil {
		s.handleError(w, err)
		return
	}

	renderStart := time.Now()
	var buf bytes.Buffer
	werr := writer.Write(r.Context(), &buf, resp, rreq)
	metrics.ObserveRender(wtName, rreq.Template(), renderStatus(werr), time.Since(renderStart))
	if werr != nil {
		s.handleError(w, werr)
		return
	}

	w.Header().Set("Content-Type", writer.ContentType(rreq))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// UpsertDocument handles PUT /docs/{id}. The body is a JSON object mapping
// field names to a string or an array of strings.
func (s *Server) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fields, err := fieldsFromBody(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	doc, err := s.docs.Upsert(r.Context(), id, fields)
	if err != nil {
		s.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, documentToJSON(doc))
}

// GetDocument handles GET /docs/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToJSON(doc))
}

// DeleteDocument handles DELETE /docs/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleError(w http.ResponseWriter, err error) {
	s.logger.Warn("request error", zap.Error(err))
	msg := safeMessage(err)
	switch {
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidDocument):
		writeError(w, http.StatusBadRequest, codeBadRequest, msg)
	case errors.Is(err, domain.ErrUnknownWriter):
		writeError(w, http.StatusBadRequest, codeUnknownWriter, msg)
	case errors.Is(err, domain.ErrTemplate):
		writeError(w, http.StatusBadRequest, codeTemplateError, msg)
	case errors.Is(err, domain.ErrTypeResolution):
		writeError(w, http.StatusBadRequest, codeTypeResolution, msg)
	case errors.Is(err, domain.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, msg)
	case errors.Is(err, domain.ErrRender):
		writeError(w, http.StatusInternalServerError, codeRenderError, msg)
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// safeMessage returns a sentinel error message for the client without
// exposing internals.
func safeMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrInvalidDocument,
		domain.ErrUnknownWriter,
		domain.ErrTemplate,
		domain.ErrTypeResolution,
		domain.ErrDocumentNotFound,
		domain.ErrRender,
	}
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

func renderStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// flattenQuery keeps the first value per key, preserving key presence so
// present-but-empty parameters survive.
func flattenQuery(q map[string][]string) map[string]string {
	params := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			params[k] = vs[0]
		} else {
			params[k] = ""
		}
	}
	return params
}

func intParam(params map[string]string, name string, def int) (int, error) {
	raw, ok := params[name]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidQuery, name)
	}
	return v, nil
}

func fieldsFromBody(body map[string]any) (map[string][]string, error) {
	fields := make(map[string][]string, len(body))
	for name, raw := range body {
		switch v := raw.(type) {
		case string:
			fields[name] = []string{v}
		case []any:
			values := make([]string, 0, len(v))
			for _, item := range v {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("field %q: values must be strings", name)
				}
				values = append(values, str)
			}
			fields[name] = values
		default:
			return nil, fmt.Errorf("field %q: value must be a string or array of strings", name)
		}
	}
	return fields, nil
}

func documentToJSON(doc domdoc.Document) map[string]any {
	out := make(map[string]any, len(doc.Fields())+1)
	out["id"] = doc.ID()
	for name, values := range doc.Fields() {
		if len(values) == 1 {
			out[name] = values[0]
		} else {
			out[name] = values
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
