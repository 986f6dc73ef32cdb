package dsl

import (
	"fmt"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// SchemaBuilder is anything that can stand where a schema is used: a type,
// array or object builder, or a Ref to a registered schema.
type SchemaBuilder interface {
	// finalize builds the immutable schema. name is the registry name for
	// top-level definitions and empty otherwise. Issue paths are relative
	// to the schema; callers rebase them.
	finalize(name string) (swaggerdsl.Schema, swaggerdsl.Issues)
}

var (
	_ SchemaBuilder = (*TypeBuilder)(nil)
	_ SchemaBuilder = (*ArrayBuilder)(nil)
	_ SchemaBuilder = (*ObjectBuilder)(nil)
	_ SchemaBuilder = Ref{}
)

func finalizeChild(sb SchemaBuilder, at swaggerdsl.PathRef) (swaggerdsl.Schema, swaggerdsl.Issues) {
	if sb == nil {
		return nil, swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, "schema is nil")
	}
	s, iss := sb.finalize("")
	if len(iss) > 0 {
		return nil, iss.Rebase(at)
	}
	return s, nil
}

// ---- array ----

// ArrayBuilder builds an array schema.
type ArrayBuilder struct {
	items       SchemaBuilder
	description string
	required    bool
}

// Array returns an array schema with the given item schema. A nil item
// schema fails when the array is finalized.
func Array(items SchemaBuilder) *ArrayBuilder { return &ArrayBuilder{items: items} }

// Description sets the description.
func (a *ArrayBuilder) Description(s string) *ArrayBuilder { a.description = s; return a }

// Required marks the array as required in its enclosing object.
func (a *ArrayBuilder) Required() *ArrayBuilder { a.required = true; return a }

func (a *ArrayBuilder) finalize(name string) (swaggerdsl.Schema, swaggerdsl.Issues) {
	if a.items == nil {
		return nil, swaggerdsl.IssueAt(swaggerdsl.Root().Field("items"), swaggerdsl.CodeIllegalFieldCombination, "array schema requires an items schema")
	}
	items, iss := finalizeChild(a.items, swaggerdsl.Root().Field("items"))
	if len(iss) > 0 {
		return nil, iss
	}
	return swaggerdsl.NewArraySchema(swaggerdsl.ArraySpec{
		Name:        name,
		Description: a.description,
		Required:    a.required,
		Items:       items,
	}), nil
}

// ---- object ----

type propertyEntry struct {
	name   string
	schema SchemaBuilder
}

// ObjectBuilder builds an object schema. Properties keep declaration order.
type ObjectBuilder struct {
	name        string // set by Document.DefineObject
	st          *state // set by Document.DefineObject
	description string
	required    bool
	props       []propertyEntry
	seen        map[string]struct{}
	iss         swaggerdsl.Issues
}

// Object creates a new anonymous object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{seen: map[string]struct{}{}}
}

func (o *ObjectBuilder) fail(iss swaggerdsl.Issues) {
	if len(o.iss) == 0 {
		o.iss = iss
	}
}

// Property appends a property. Names are unique within one object.
func (o *ObjectBuilder) Property(name string, s SchemaBuilder) *ObjectBuilder {
	at := swaggerdsl.Root().Field("properties").Field(name)
	switch {
	case name == "":
		o.fail(swaggerdsl.IssueAt(swaggerdsl.Root().Field("properties"), swaggerdsl.CodeIllegalFieldCombination, "property name is empty"))
		return o
	case s == nil:
		o.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, "property schema is nil"))
		return o
	}
	if _, dup := o.seen[name]; dup {
		o.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("property %q is already declared", name)))
		return o
	}
	o.seen[name] = struct{}{}
	o.props = append(o.props, propertyEntry{name: name, schema: s})
	return o
}

// Description sets the description.
func (o *ObjectBuilder) Description(s string) *ObjectBuilder { o.description = s; return o }

// Required marks the object as required in its enclosing object.
func (o *ObjectBuilder) Required() *ObjectBuilder { o.required = true; return o }

// Self returns a reference to the object being built. It is only available
// on objects created by Document.DefineObject, whose name is known before the
// body is complete.
func (o *ObjectBuilder) Self() Ref {
	if o.name == "" {
		return Ref{iss: swaggerdsl.IssueAt(swaggerdsl.Root(), swaggerdsl.CodeUnresolvedReference, "Self() requires an object defined with DefineObject")}
	}
	return Ref{name: o.name, typ: swaggerdsl.TypeObject, st: o.st}
}

func (o *ObjectBuilder) finalize(name string) (swaggerdsl.Schema, swaggerdsl.Issues) {
	if len(o.iss) > 0 {
		return nil, o.iss
	}
	props := make([]swaggerdsl.Property, 0, len(o.props))
	var iss swaggerdsl.Issues
	for _, p := range o.props {
		s, i2 := finalizeChild(p.schema, swaggerdsl.Root().Field("properties").Field(p.name))
		if len(i2) > 0 {
			iss = swaggerdsl.AppendIssues(iss, i2...)
			continue
		}
		props = append(props, swaggerdsl.Property{Name: p.name, Schema: s})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if name == "" {
		name = o.name
	}
	return swaggerdsl.NewObjectSchema(swaggerdsl.ObjectSpec{
		Name:        name,
		Description: o.description,
		Required:    o.required,
		Properties:  props,
	}), nil
}

// ---- reference ----

// Ref is a handle to a registered schema, obtained from Document.Define,
// Document.DefineObject, Document.Ref or ObjectBuilder.Self. It renders as
// a $ref wherever it is used.
type Ref struct {
	name     string
	typ      string
	required bool
	st       *state // nil for refs not handed out by a Document
	iss      swaggerdsl.Issues
}

func refFromHandle(st *state, h *swaggerdsl.RefSchema) Ref {
	return Ref{name: h.Name(), typ: h.DeclaredType(), st: st}
}

// Name returns the referenced schema name.
func (r Ref) Name() string { return r.name }

// Type returns the declared type of the referenced schema.
func (r Ref) Type() string { return r.typ }

// Required returns a copy that is marked required in its enclosing object.
func (r Ref) Required() Ref { r.required = true; return r }

// Description always fails: a reference carries no description of its own.
// Describe the registered schema instead. The build fails at this call,
// whether or not the returned Ref is used.
func (r Ref) Description(string) Ref {
	hint := fmt.Sprintf("cannot set a description on a reference to %q", r.name)
	if r.st != nil {
		at := swaggerdsl.Root().Field("definitions").Field(r.name).Field("description")
		r.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalMutation, hint))
		return r
	}
	if len(r.iss) == 0 {
		r.iss = swaggerdsl.IssueAt(swaggerdsl.Root().Field("description"), swaggerdsl.CodeIllegalMutation, hint)
	}
	return r
}

func (r Ref) finalize(string) (swaggerdsl.Schema, swaggerdsl.Issues) {
	if len(r.iss) > 0 {
		return nil, r.iss
	}
	if r.name == "" {
		return nil, swaggerdsl.IssueAt(swaggerdsl.Root(), swaggerdsl.CodeUnresolvedReference, "reference has no target")
	}
	h := swaggerdsl.NewRef(r.name, r.typ)
	if r.required {
		h = h.AsRequired()
	}
	return h, nil
}
