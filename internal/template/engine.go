package template

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/kailas-cloud/searchview/internal/domain"
)

// DefaultExtension is appended to template names when the config leaves it
// empty.
const DefaultExtension = ".tpl"

// Engine loads named templates from a single directory and executes them.
// Names are bare (no extension); the configured extension is appended on
// lookup. Names must not resolve outside the directory.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

// New creates an engine over a template directory.
func New(dir, ext string) (*Engine, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, fmt.Errorf("template loader for %q: %w", dir, err)
	}

	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &Engine{
		set:   pongo2.NewSet("searchview", loader),
		ext:   ext,
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render loads the named template and executes it against data.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tmpl, err := e.get(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("%w: execute %q: %w", domain.ErrTemplate, name, err)
	}
	return buf.String(), nil
}

func (e *Engine) get(name string) (*pongo2.Template, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	path := name + e.ext

	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load %q: %w", domain.ErrTemplate, name, err)
	}

	e.cache[path] = tmpl
	return tmpl, nil
}

// validateName rejects names that could resolve outside the template
// directory. Trust boundary: the name comes straight from the request.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: invalid template name %q", domain.ErrTemplate, name)
	}
	return nil
}
