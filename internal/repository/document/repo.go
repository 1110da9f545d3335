package document

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/searchview/internal/domain"
	domdoc "github.com/kailas-cloud/searchview/internal/domain/document"
	"github.com/kailas-cloud/searchview/internal/domain/search/result"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo resolves stored fields by document reference and maintains the
// stored documents. Each document is one hash: field name to encoded
// value(s).
type Repo struct {
	store  store
	prefix string
}

// New creates a document repository. keyPrefix namespaces all keys.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

func (r *Repo) docKey(ref result.Ref) string {
	return r.prefix + "doc:" + string(ref)
}

// Fields resolves the stored fields of one document reference.
func (r *Repo) Fields(ctx context.Context, ref result.Ref) (domdoc.Document, error) {
	key := r.docKey(ref)
	raw, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(raw) == 0 {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}

	fields := make(map[string][]string, len(raw))
	for name, v := range raw {
		fields[name] = decodeValues(v)
	}
	return domdoc.New(string(ref), fields), nil
}

// Upsert stores a document, replacing any previous fields.
func (r *Repo) Upsert(ctx context.Context, doc domdoc.Document) error {
	fields := make(map[string]string, len(doc.Fields()))
	for name, values := range doc.Fields() {
		enc, err := encodeValues(values)
		if err != nil {
			return fmt.Errorf("encode field %q: %w", name, err)
		}
		fields[name] = enc
	}

	key := r.docKey(result.Ref(doc.ID()))

	// Del first so fields removed from the document do not linger in the hash.
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Delete removes a document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.docKey(result.Ref(id))

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrDocumentNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns every stored document reference in sorted order. SCAN
// returns keys unordered; sorting keeps query results deterministic.
func (r *Repo) List(ctx context.Context) ([]result.Ref, error) {
	pattern := r.prefix + "doc:*"
	keys, err := r.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}

	refs := make([]result.Ref, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, result.Ref(strings.TrimPrefix(k, r.prefix+"doc:")))
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs, nil
}
