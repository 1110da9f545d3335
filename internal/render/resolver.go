package render

import (
	"fmt"

	"github.com/kailas-cloud/searchview/internal/domain"
	"github.com/kailas-cloud/searchview/internal/domain/search/response"
)

// Response is the capability a named response type must provide: binding
// the raw query response into its own structure before template execution.
type Response interface {
	Bind(resp *response.Response) error
}

// Resolver maps response type names to factories. Lookup tries the literal
// name first, then the default namespace prefix, so templates can request
// stock types by short name.
type Resolver struct {
	prefix    string
	factories map[string]func() any
}

// NewResolver creates a resolver with a default namespace prefix.
func NewResolver(prefix string) *Resolver {
	return &Resolver{prefix: prefix, factories: make(map[string]func() any)}
}

// Register binds a type name to a factory. The produced value is checked
// against the Response capability at resolution time, not at registration.
func (r *Resolver) Register(name string, factory func() any) {
	r.factories[name] = factory
}

// Resolve produces a fresh instance for a type name. Unknown names and
// instances lacking the Response capability are typed errors, raised
// before any template executes.
func (r *Resolver) Resolve(name string) (Response, error) {
	factory, ok := r.factories[name]
	if !ok {
		factory, ok = r.factories[r.prefix+name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown response type %q", domain.ErrTypeResolution, name)
	}

	resp, ok := factory().(Response)
	if !ok {
		return nil, fmt.Errorf(
			"%w: type %q does not provide the response capability", domain.ErrTypeResolution, name)
	}
	return resp, nil
}

// DefaultResolver returns a resolver with the stock response types
// registered under the "response." namespace.
func DefaultResolver() *Resolver {
	r := NewResolver("response.")
	r.Register("response.QueryResponse", func() any { return &QueryResponse{} })
	return r
}
