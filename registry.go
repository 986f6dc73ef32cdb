package swaggerdsl

import "fmt"

// Registry interns named schemas. A name is registered at most once; uses of
// a registered schema elsewhere are *RefSchema handles.
//
// A Registry is mutated by a single construction pass and is not safe for
// concurrent use.
type Registry struct {
	order   []string
	schemas map[string]Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: map[string]Schema{}}
}

// Register stores s under name and returns the handle for it.
func (r *Registry) Register(name string, s Schema) (*RefSchema, error) {
	p := Root().Field("definitions").Field(name)
	if name == "" {
		return nil, IssueAt(p, CodeIllegalFieldCombination, "schema name is empty")
	}
	if s == nil {
		return nil, IssueAt(p, CodeIllegalFieldCombination, "schema body is nil")
	}
	if _, dup := r.schemas[name]; dup {
		return nil, IssueAt(p, CodeDuplicateName, fmt.Sprintf("schema %q is already registered", name))
	}
	r.schemas[name] = s
	r.order = append(r.order, name)
	return NewRef(name, s.DeclaredType()), nil
}

// Lookup returns the handle for a registered name.
func (r *Registry) Lookup(name string) (*RefSchema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, IssueAt(Root().Field("definitions").Field(name), CodeUnresolvedReference, fmt.Sprintf("schema %q is not registered", name))
	}
	return NewRef(name, s.DeclaredType()), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.schemas[name]
	return ok
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return len(r.order) }

// Snapshot copies the entries in registration order.
func (r *Registry) Snapshot() []NamedSchema {
	out := make([]NamedSchema, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, NamedSchema{Name: n, Schema: r.schemas[n]})
	}
	return out
}
