package render

import "net/url"

// Request parameter names understood by the renderer.
const (
	ParamTemplate     = "template"
	ParamWrap         = "wrap"
	ParamResponseType = "responseType"
	ParamContentType  = "contentType"
)

// DefaultTemplate is used when no template parameter is given.
const DefaultTemplate = "default"

// Request carries the rendering parameters of one query. Parameter
// presence matters: the wrap parameter enables wrap mode even when its
// value is empty. A request is built once per query and discarded after
// rendering.
type Request struct {
	params map[string]string
}

// NewRequest builds a request from flat parameters. A key present with an
// empty value is distinct from an absent key.
func NewRequest(params map[string]string) Request {
	p := make(map[string]string, len(params))
	for k, v := range params {
		p[k] = v
	}
	return Request{params: p}
}

// FromQuery builds a request from URL query values. The first value of
// each key wins.
func FromQuery(q url.Values) Request {
	p := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			p[k] = vs[0]
		} else {
			p[k] = ""
		}
	}
	return Request{params: p}
}

// Template returns the requested template name. Only an absent parameter
// falls back to DefaultTemplate; an explicit empty name is passed through
// and fails template lookup.
func (r Request) Template() string {
	if name, ok := r.params[ParamTemplate]; ok {
		return name
	}
	return DefaultTemplate
}

// Wrapped reports whether script-callback wrapping was requested. The
// parameter enables wrap mode even when its value is empty.
func (r Request) Wrapped() bool {
	_, ok := r.params[ParamWrap]
	return ok
}

// WrapName returns the callback name for wrap mode.
func (r Request) WrapName() string { return r.params[ParamWrap] }

// ContentTypeOverride returns the explicit content-type parameter and
// whether it was supplied.
func (r Request) ContentTypeOverride() (string, bool) {
	v, ok := r.params[ParamContentType]
	return v, ok
}

// ResponseType returns the requested response object type name and whether
// it was supplied.
func (r Request) ResponseType() (string, bool) {
	v, ok := r.params[ParamResponseType]
	return v, ok
}

// Param returns a raw parameter value ("" when absent).
func (r Request) Param(name string) string { return r.params[name] }

// Params returns the raw parameter map. Callers must not mutate it.
func (r Request) Params() map[string]string { return r.params }
