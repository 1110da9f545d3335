package result

// Ref is an opaque reference to a document in the stored index.
type Ref string

// Set is the ordered, finite sequence of document references produced by
// one query. It borrows the searcher's matches for the duration of
// rendering; it never owns or mutates documents.
type Set struct {
	refs []Ref
}

// NewSet creates a result set over ordered references.
func NewSet(refs []Ref) Set {
	return Set{refs: refs}
}

// Refs returns the references in match order. Callers must not mutate it.
func (s *Set) Refs() []Ref { return s.refs }

// Len returns the number of references.
func (s *Set) Len() int { return len(s.refs) }
