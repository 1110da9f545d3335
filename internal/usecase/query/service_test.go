package query

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	listFn   func(ctx context.Context) ([]result.Ref, error)
	fieldsFn func(ctx context.Context, ref result.Ref) (document.Document, error)
}

func (m *mockRepo) List(ctx context.Context) ([]result.Ref, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) Fields(ctx context.Context, ref result.Ref) (document.Document, error) {
	if m.fieldsFn != nil {
		return m.fieldsFn(ctx, ref)
	}
	return document.Document{}, domain.ErrDocumentNotFound
}

func mustRequest(t *testing.T, q string, start, rows int) Request {
	t.Helper()
	req, err := NewRequest(q, start, rows, map[string]string{"q": q})
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	return req
}

func corpus() map[result.Ref]document.Document {
	return map[result.Ref]document.Document{
		"a": document.New("a", map[string][]string{"title": {"Go in Action"}}),
		"b": document.New("b", map[string][]string{"title": {"Rust basics"}, "tags": {"systems", "golang"}}),
		"c": document.New("c", map[string][]string{"title": {"Cooking"}}),
	}
}

func corpusRepo() *mockRepo {
	docs := corpus()
	return &mockRepo{
		listFn: func(context.Context) ([]result.Ref, error) {
			return []result.Ref{"a", "b", "c"}, nil
		},
		fieldsFn: func(_ context.Context, ref result.Ref) (document.Document, error) {
			doc, ok := docs[ref]
			if !ok {
				return document.Document{}, domain.ErrDocumentNotFound
			}
			return doc, nil
		},
	}
}

func TestExecute_StarMatchesAll(t *testing.T) {
	fetched := 0
	repo := corpusRepo()
	inner := repo.fieldsFn
	repo.fieldsFn = func(ctx context.Context, ref result.Ref) (document.Document, error) {
		fetched++
		return inner(ctx, ref)
	}
	svc := New(repo, nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "*", 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.NumFound() != 3 {
		t.Errorf("got numFound %d, want 3", resp.NumFound())
	}
	if fetched != 0 {
		t.Errorf("star query must not fetch fields, got %d fetches", fetched)
	}
}

func TestExecute_CaseInsensitiveSubstring(t *testing.T) {
	svc := New(corpusRepo(), nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "GOLANG", 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := resp.Results()
	want := []result.Ref{"b"}
	if diff := cmp.Diff(want, set.Refs()); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_MatchesAnyFieldValue(t *testing.T) {
	svc := New(corpusRepo(), nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "go", 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []result.Ref{"a", "b"}
	set := resp.Results()
	if diff := cmp.Diff(want, set.Refs()); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_WindowingKeepsNumFound(t *testing.T) {
	svc := New(corpusRepo(), nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "*", 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.NumFound() != 3 {
		t.Errorf("numFound must count all matches, got %d", resp.NumFound())
	}
	if resp.Start() != 1 {
		t.Errorf("got start %d, want 1", resp.Start())
	}
	set := resp.Results()
	want := []result.Ref{"b"}
	if diff := cmp.Diff(want, set.Refs()); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_StartPastEnd(t *testing.T) {
	svc := New(corpusRepo(), nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "*", 10, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := resp.Results()
	if set.Len() != 0 {
		t.Errorf("expected empty window, got %d refs", set.Len())
	}
	if resp.NumFound() != 3 {
		t.Errorf("got numFound %d, want 3", resp.NumFound())
	}
}

func TestExecute_SkipsVanishedDocuments(t *testing.T) {
	repo := corpusRepo()
	inner := repo.fieldsFn
	repo.fieldsFn = func(ctx context.Context, ref result.Ref) (document.Document, error) {
		if ref == "a" {
			return document.Document{}, domain.ErrDocumentNotFound
		}
		return inner(ctx, ref)
	}
	svc := New(repo, nil)

	resp, err := svc.Execute(context.Background(), mustRequest(t, "go", 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []result.Ref{"b"}
	set := resp.Results()
	if diff := cmp.Diff(want, set.Refs()); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("scan failed")
	repo := &mockRepo{
		listFn: func(context.Context) ([]result.Ref, error) { return nil, storeErr },
	}
	svc := New(repo, nil)

	_, err := svc.Execute(context.Background(), mustRequest(t, "*", 0, 10))
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestNewRequest_Validation(t *testing.T) {
	if _, err := NewRequest("", 0, 10, nil); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("empty q: expected ErrInvalidQuery, got %v", err)
	}
	if _, err := NewRequest("x", -1, 10, nil); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("negative start: expected ErrInvalidQuery, got %v", err)
	}

	req, err := NewRequest("x", 0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Rows() != DefaultRows {
		t.Errorf("got rows %d, want default %d", req.Rows(), DefaultRows)
	}

	req, err = NewRequest("x", 0, 1000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Rows() != MaxRows {
		t.Errorf("got rows %d, want cap %d", req.Rows(), MaxRows)
	}
}
