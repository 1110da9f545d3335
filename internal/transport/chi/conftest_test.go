package chi

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/searchview/internal/domain"
	domdoc "github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
	"github.com/kailas-cloud/searchview/internal/render"
	documentuc "github.com/kailas-cloud/searchview/internal/usecase/document"
	queryuc "github.com/kailas-cloud/searchview/internal/usecase/query"
)

// memRepo is an in-memory document index serving query execution, document
// maintenance, and lazy field resolution in handler tests.
type memRepo struct {
	docs     map[string]domdoc.Document
	fieldErr error
}

func newMemRepo(docs ...domdoc.Document) *memRepo {
	m := &memRepo{docs: make(map[string]domdoc.Document, len(docs))}
	for _, d := range docs {
		m.docs[d.ID()] = d
	}
	return m
}

func (m *memRepo) List(context.Context) ([]result.Ref, error) {
	refs := make([]result.Ref, 0, len(m.docs))
	for id := range m.docs {
		refs = append(refs, result.Ref(id))
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs, nil
}

func (m *memRepo) Fields(_ context.Context, ref result.Ref) (domdoc.Document, error) {
	if m.fieldErr != nil {
		return domdoc.Document{}, m.fieldErr
	}
	doc, ok := m.docs[string(ref)]
	if !ok {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *memRepo) Upsert(_ context.Context, doc domdoc.Document) error {
	m.docs[doc.ID()] = doc
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(m.docs, id)
	return nil
}

// stubEngine renders a fixed body, recording the requested template name.
type stubEngine struct {
	out     string
	err     error
	gotName string
}

func (s *stubEngine) Render(name string, data map[string]any) (string, error) {
	s.gotName = name
	if s.err != nil {
		return "", s.err
	}
	if s.out != "" {
		return s.out, nil
	}
	return "rendered:" + name, nil
}

type stubPinger struct{ err error }

func (p *stubPinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, repo *memRepo, engine render.Engine, pinger *stubPinger) *Server {
	t.Helper()
	if engine == nil {
		engine = &stubEngine{}
	}
	if pinger == nil {
		pinger = &stubPinger{}
	}

	renderer := render.New(engine, repo, nil, zap.NewNop())
	writers := NewRegistry("json")
	writers.Register("json", NewJSONWriter(repo))
	writers.Register("template", NewTemplateWriter(renderer))

	return NewServer(
		queryuc.New(repo, zap.NewNop()),
		documentuc.New(repo),
		writers,
		pinger,
		zap.NewNop(),
	)
}

func testDoc(id string, kv ...string) domdoc.Document {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("testDoc: odd kv for %s", id))
	}
	fields := make(map[string][]string, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		fields[kv[i]] = append(fields[kv[i]], kv[i+1])
	}
	return domdoc.New(id, fields)
}
