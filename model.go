package swaggerdsl

// Version is the only specification version this model encodes.
const Version = "2.0"

// Placement is where a parameter is carried in the request.
type Placement string

const (
	InPath     Placement = "path"
	InQuery    Placement = "query"
	InBody     Placement = "body"
	InHeader   Placement = "header"
	InFormData Placement = "formData"
)

// Collection formats for array parameters.
const (
	CollectionCSV   = "csv"
	CollectionSSV   = "ssv"
	CollectionTSV   = "tsv"
	CollectionPipes = "pipes"
	CollectionMulti = "multi"
)

// IsCollectionFormat reports whether f is a legal array encoding.
func IsCollectionFormat(f string) bool {
	switch f {
	case CollectionCSV, CollectionSSV, CollectionTSV, CollectionPipes, CollectionMulti:
		return true
	}
	return false
}

// AllowsMulti reports whether the "multi" collection format is legal for p.
// Only query and form-data parameters can repeat a key.
func (p Placement) AllowsMulti() bool { return p == InQuery || p == InFormData }

// Info is the document metadata.
type Info struct {
	Description string
	Version     string
	Title       string
	Host        string
	BasePath    string
	Schemes     []string
}

func (i Info) clone() Info {
	i.Schemes = append([]string(nil), i.Schemes...)
	return i
}

// Tag groups operations.
type Tag struct {
	Name        string
	Description string
}

// Parameter is one operation parameter. Body parameters carry Schema; the
// others carry an inline type, optionally an array with CollectionFormat and
// Items, or a type Schema whose fields are inlined.
type Parameter struct {
	Name        string
	In          Placement
	Description string
	Required    bool

	Type   string
	Format string
	Enum   []any
	Schema Schema

	CollectionFormat string
	Items            Schema
}

// Response is one status code entry of an operation.
type Response struct {
	Code        int
	Description string
	Schema      Schema
}

// Operation is a path entry: one method on one path.
type Operation struct {
	Path        string
	Method      string
	Tags        []string
	Summary     string
	Description string
	OperationID string
	Deprecated  bool
	Produces    []string
	Consumes    []string
	Parameters  []Parameter
	Responses   []Response
}

func (o Operation) clone() Operation {
	o.Tags = append([]string(nil), o.Tags...)
	o.Produces = append([]string(nil), o.Produces...)
	o.Consumes = append([]string(nil), o.Consumes...)
	params := make([]Parameter, len(o.Parameters))
	for i, p := range o.Parameters {
		p.Enum = append([]any(nil), p.Enum...)
		params[i] = p
	}
	o.Parameters = params
	o.Responses = append([]Response(nil), o.Responses...)
	return o
}

// DefinitionSpec is the input to NewDefinition.
type DefinitionSpec struct {
	Info        *Info
	Tags        []Tag
	Paths       []Operation
	Definitions []NamedSchema
}

// Definition is a finished, immutable Swagger document. Every accessor
// returns a copy.
type Definition struct {
	info    *Info
	tags    []Tag
	paths   []Operation
	defs    []NamedSchema
	defsIdx map[string]int
}

// NewDefinition copies spec into an immutable Definition. It does not
// validate; the dsl package is the validating entry point.
func NewDefinition(spec DefinitionSpec) *Definition {
	d := &Definition{
		tags:    append([]Tag(nil), spec.Tags...),
		paths:   make([]Operation, 0, len(spec.Paths)),
		defs:    append([]NamedSchema(nil), spec.Definitions...),
		defsIdx: make(map[string]int, len(spec.Definitions)),
	}
	if spec.Info != nil {
		info := spec.Info.clone()
		d.info = &info
	}
	for _, op := range spec.Paths {
		d.paths = append(d.paths, op.clone())
	}
	for i, ns := range d.defs {
		d.defsIdx[ns.Name] = i
	}
	return d
}

// Version returns the specification version string.
func (d *Definition) Version() string { return Version }

// Info returns the metadata and whether it was set.
func (d *Definition) Info() (Info, bool) {
	if d.info == nil {
		return Info{}, false
	}
	return d.info.clone(), true
}

// Tags returns the tags in insertion order.
func (d *Definition) Tags() []Tag { return append([]Tag(nil), d.tags...) }

// Paths returns the path entries in insertion order.
func (d *Definition) Paths() []Operation {
	out := make([]Operation, len(d.paths))
	for i, op := range d.paths {
		out[i] = op.clone()
	}
	return out
}

// Definitions returns the registered schemas in registration order.
func (d *Definition) Definitions() []NamedSchema { return append([]NamedSchema(nil), d.defs...) }

// Schema returns the registered schema body for name.
func (d *Definition) Schema(name string) (Schema, bool) {
	i, ok := d.defsIdx[name]
	if !ok {
		return nil, false
	}
	return d.defs[i].Schema, true
}
