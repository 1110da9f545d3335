package render

import (
	"context"
	"testing"
	"time"

	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// mockResolver implements FieldResolver for tests.
type mockResolver struct {
	fieldsFn func(ctx context.Context, ref result.Ref) (document.Document, error)
	calls    int
}

func (m *mockResolver) Fields(ctx context.Context, ref result.Ref) (document.Document, error) {
	m.calls++
	if m.fieldsFn != nil {
		return m.fieldsFn(ctx, ref)
	}
	return document.New(string(ref), map[string][]string{"title": {string(ref) + "-title"}}), nil
}

// mockEngine implements Engine for tests.
type mockEngine struct {
	renderFn func(name string, data map[string]any) (string, error)
	calls    int
	gotName  string
	gotData  map[string]any
}

func (m *mockEngine) Render(name string, data map[string]any) (string, error) {
	m.calls++
	m.gotName = name
	m.gotData = data
	if m.renderFn != nil {
		return m.renderFn(name, data)
	}
	return "rendered", nil
}

func testResponse(t *testing.T, refs ...result.Ref) *response.Response {
	t.Helper()
	return response.New(
		result.NewSet(refs), len(refs), 0,
		5*time.Millisecond, map[string]string{"q": "hello"},
	)
}
