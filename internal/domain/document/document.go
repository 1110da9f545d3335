package document

import "sort"

// Document is one matched document materialized for rendering: stored
// fields resolved from the index, keyed by field name. Fields may carry
// multiple values; value order is preserved as stored.
type Document struct {
	id     string
	fields map[string][]string
}

// New creates a rendered document.
func New(id string, fields map[string][]string) Document {
	return Document{id: id, fields: fields}
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Fields returns the field map. Callers must not mutate it.
func (d Document) Fields() map[string][]string { return d.fields }

// FieldNames returns the field names in sorted order.
func (d Document) FieldNames() []string {
	names := make([]string, 0, len(d.fields))
	for name := range d.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the field exists.
func (d Document) Has(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Value returns the first value of a field, or "" when absent.
func (d Document) Value(name string) string {
	values := d.fields[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values of a field.
func (d Document) Values(name string) []string { return d.fields[name] }
