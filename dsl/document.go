package dsl

import (
	"fmt"
	"strings"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// Document is the top-level builder scope handed to Build's setup routine.
type Document struct {
	st *state

	info     *swaggerdsl.Info
	tags     []swaggerdsl.Tag
	tagNames map[string]struct{} // lower-cased
	ops      []swaggerdsl.Operation
	opKeys   map[string]struct{} // path + " " + method
	opIDs    map[string]struct{}
	defining map[string]struct{} // DefineObject calls still in progress
}

func newDocument() *Document {
	return &Document{
		st:       &state{reg: swaggerdsl.NewRegistry()},
		tagNames: map[string]struct{}{},
		opKeys:   map[string]struct{}{},
		opIDs:    map[string]struct{}{},
		defining: map[string]struct{}{},
	}
}

// Info configures the document metadata. Repeated calls edit the same Info.
func (d *Document) Info(fn func(i *InfoScope)) *Document {
	if d.st.failed() {
		return d
	}
	if d.info == nil {
		d.info = &swaggerdsl.Info{}
	}
	if fn != nil {
		fn(&InfoScope{info: d.info})
	}
	return d
}

// Tag declares a tag. Names are unique ignoring case.
func (d *Document) Tag(name, description string) *Document {
	if d.st.failed() {
		return d
	}
	at := swaggerdsl.Root().Field("tags").Field(name)
	if name == "" {
		d.st.fail(swaggerdsl.IssueAt(swaggerdsl.Root().Field("tags"), swaggerdsl.CodeIllegalFieldCombination, "tag name is empty"))
		return d
	}
	key := strings.ToLower(name)
	if _, dup := d.tagNames[key]; dup {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("tag %q is already declared", name)))
		return d
	}
	d.tagNames[key] = struct{}{}
	d.tags = append(d.tags, swaggerdsl.Tag{Name: name, Description: description})
	return d
}

// Path declares the operation for method on path. Each (path, method) pair
// may be declared once.
func (d *Document) Path(path, method string, fn func(op *OperationScope)) *Document {
	if d.st.failed() {
		return d
	}
	m := strings.ToLower(method)
	at := swaggerdsl.Root().Field("paths").Field(path).Field(m)
	if !strings.HasPrefix(path, "/") {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("path %q must start with '/'", path)))
		return d
	}
	if !isMethod(m) {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("unsupported method %q", method)))
		return d
	}
	key := path + " " + m
	if _, dup := d.opKeys[key]; dup {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("%s %s is already declared", strings.ToUpper(m), path)))
		return d
	}
	d.opKeys[key] = struct{}{}

	op := newOperationScope(d.st, at, path, m)
	if fn != nil {
		fn(op)
	}
	if d.st.failed() {
		return d
	}
	if id := op.op.OperationID; id != "" {
		if _, dup := d.opIDs[id]; dup {
			d.st.fail(swaggerdsl.IssueAt(at.Field("operationId"), swaggerdsl.CodeDuplicateName, fmt.Sprintf("operationId %q is already used", id)))
			return d
		}
		d.opIDs[id] = struct{}{}
	}
	d.ops = append(d.ops, op.op)
	return d
}

// Get declares a GET operation.
func (d *Document) Get(path string, fn func(op *OperationScope)) *Document {
	return d.Path(path, "get", fn)
}

// Post declares a POST operation.
func (d *Document) Post(path string, fn func(op *OperationScope)) *Document {
	return d.Path(path, "post", fn)
}

// Put declares a PUT operation.
func (d *Document) Put(path string, fn func(op *OperationScope)) *Document {
	return d.Path(path, "put", fn)
}

// Patch declares a PATCH operation.
func (d *Document) Patch(path string, fn func(op *OperationScope)) *Document {
	return d.Path(path, "patch", fn)
}

// Delete declares a DELETE operation.
func (d *Document) Delete(path string, fn func(op *OperationScope)) *Document {
	return d.Path(path, "delete", fn)
}

// Define finalizes s and registers it under name. Uses of the returned Ref
// render as $ref to the registered body.
func (d *Document) Define(name string, s SchemaBuilder) Ref {
	if d.st.failed() || !d.reserve(name) {
		return Ref{}
	}
	return d.register(name, s)
}

// DefineObject builds a named object. Inside fn, o.Self() refers to the
// object being built, so self-referencing and mutually recursive schemas
// can be expressed before the body is complete.
func (d *Document) DefineObject(name string, fn func(o *ObjectBuilder)) Ref {
	if d.st.failed() || !d.reserve(name) {
		return Ref{}
	}
	o := Object()
	o.name = name
	o.st = d.st
	d.defining[name] = struct{}{}
	if fn != nil {
		fn(o)
	}
	delete(d.defining, name)
	if d.st.failed() {
		return Ref{}
	}
	return d.register(name, o)
}

// Ref looks up a registered schema by name.
func (d *Document) Ref(name string) Ref {
	if d.st.failed() {
		return Ref{}
	}
	h, err := d.st.reg.Lookup(name)
	if err != nil {
		d.failErr(err)
		return Ref{}
	}
	return refFromHandle(d.st, h)
}

// RegistryView is the read-only side of the schema registry.
type RegistryView interface {
	Has(name string) bool
	Len() int
	Lookup(name string) (*swaggerdsl.RefSchema, error)
}

// Registry exposes the schemas registered so far.
func (d *Document) Registry() RegistryView { return d.st.reg }

// reserve rejects names that are registered or still being defined.
func (d *Document) reserve(name string) bool {
	at := swaggerdsl.Root().Field("definitions").Field(name)
	if name == "" {
		d.st.fail(swaggerdsl.IssueAt(swaggerdsl.Root().Field("definitions"), swaggerdsl.CodeIllegalFieldCombination, "schema name is empty"))
		return false
	}
	_, inProgress := d.defining[name]
	if inProgress || d.st.reg.Has(name) {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("schema %q is already registered", name)))
		return false
	}
	return true
}

func (d *Document) register(name string, s SchemaBuilder) Ref {
	at := swaggerdsl.Root().Field("definitions").Field(name)
	if s == nil {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, "schema is nil"))
		return Ref{}
	}
	body, iss := s.finalize(name)
	if len(iss) > 0 {
		d.st.fail(iss.Rebase(at))
		return Ref{}
	}
	if _, ok := body.(*swaggerdsl.RefSchema); ok {
		d.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, "a definition cannot be a bare reference"))
		return Ref{}
	}
	h, err := d.st.reg.Register(name, body)
	if err != nil {
		d.failErr(err)
		return Ref{}
	}
	return refFromHandle(d.st, h)
}

func (d *Document) failErr(err error) {
	if iss, ok := swaggerdsl.AsIssues(err); ok {
		d.st.fail(iss)
		return
	}
	d.st.fail(swaggerdsl.IssueAt(swaggerdsl.Root(), swaggerdsl.CodeIllegalFieldCombination, err.Error()))
}

func (d *Document) finalize() (*swaggerdsl.Definition, error) {
	if d.st.failed() {
		return nil, d.st.iss
	}
	return swaggerdsl.NewDefinition(swaggerdsl.DefinitionSpec{
		Info:        d.info,
		Tags:        d.tags,
		Paths:       d.ops,
		Definitions: d.st.reg.Snapshot(),
	}), nil
}

func isMethod(m string) bool {
	switch m {
	case "get", "put", "post", "delete", "options", "head", "patch":
		return true
	}
	return false
}

// InfoScope edits the document metadata.
type InfoScope struct{ info *swaggerdsl.Info }

// Title sets the API title.
func (i *InfoScope) Title(s string) *InfoScope { i.info.Title = s; return i }

// Description sets the API description; it may span several lines.
func (i *InfoScope) Description(s string) *InfoScope { i.info.Description = s; return i }

// Version sets the API version.
func (i *InfoScope) Version(s string) *InfoScope { i.info.Version = s; return i }

// Host sets the host (name or IP, optionally with port).
func (i *InfoScope) Host(s string) *InfoScope { i.info.Host = s; return i }

// BasePath sets the base path relative to the host.
func (i *InfoScope) BasePath(s string) *InfoScope { i.info.BasePath = s; return i }

// Schemes appends transfer protocols ("https", "http", ...).
func (i *InfoScope) Schemes(s ...string) *InfoScope {
	i.info.Schemes = append(i.info.Schemes, s...)
	return i
}
