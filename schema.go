package swaggerdsl

// Primitive type strings accepted wherever a schema or parameter type is set.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

// IsPrimitiveType reports whether t is one of the legal primitive type strings.
func IsPrimitiveType(t string) bool {
	switch t {
	case TypeArray, TypeBoolean, TypeInteger, TypeNumber, TypeObject, TypeString:
		return true
	}
	return false
}

// SchemaKind identifies a Schema variant.
type SchemaKind int

const (
	KindObject SchemaKind = iota
	KindArray
	KindType
	KindRef
)

func (k SchemaKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindType:
		return "type"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Schema is the closed set of schema variants: *ObjectSchema, *ArraySchema,
// *TypeSchema and *RefSchema. Consumers switch on the concrete type.
type Schema interface {
	Kind() SchemaKind
	// Name is the registry name, empty for anonymous schemas. It is never
	// emitted on the schema body itself.
	Name() string
	IsRequired() bool
	// DeclaredType is the primitive type the schema stands for.
	DeclaredType() string
	sealed()
}

// Property is one named entry of an object schema.
type Property struct {
	Name   string
	Schema Schema
}

// ObjectSpec holds the fields of an object schema.
type ObjectSpec struct {
	Name        string
	Description string
	Required    bool
	Properties  []Property
}

// ObjectSchema is an immutable object schema.
type ObjectSchema struct{ spec ObjectSpec }

// NewObjectSchema copies spec into an immutable object schema.
func NewObjectSchema(spec ObjectSpec) *ObjectSchema {
	spec.Properties = append([]Property(nil), spec.Properties...)
	return &ObjectSchema{spec: spec}
}

func (o *ObjectSchema) Kind() SchemaKind     { return KindObject }
func (o *ObjectSchema) Name() string         { return o.spec.Name }
func (o *ObjectSchema) IsRequired() bool     { return o.spec.Required }
func (o *ObjectSchema) DeclaredType() string { return TypeObject }
func (o *ObjectSchema) Description() string  { return o.spec.Description }
func (*ObjectSchema) sealed()                {}

// Properties returns the properties in declaration order.
func (o *ObjectSchema) Properties() []Property {
	return append([]Property(nil), o.spec.Properties...)
}

// RequiredProperties returns, in declaration order, the names of the
// properties whose own schema is marked required.
func (o *ObjectSchema) RequiredProperties() []string {
	var out []string
	for _, p := range o.spec.Properties {
		if p.Schema != nil && p.Schema.IsRequired() {
			out = append(out, p.Name)
		}
	}
	return out
}

// ArraySpec holds the fields of an array schema.
type ArraySpec struct {
	Name        string
	Description string
	Required    bool
	Items       Schema
}

// ArraySchema is an immutable array schema.
type ArraySchema struct{ spec ArraySpec }

// NewArraySchema copies spec into an immutable array schema.
func NewArraySchema(spec ArraySpec) *ArraySchema { return &ArraySchema{spec: spec} }

func (a *ArraySchema) Kind() SchemaKind     { return KindArray }
func (a *ArraySchema) Name() string         { return a.spec.Name }
func (a *ArraySchema) IsRequired() bool     { return a.spec.Required }
func (a *ArraySchema) DeclaredType() string { return TypeArray }
func (a *ArraySchema) Description() string  { return a.spec.Description }
func (*ArraySchema) sealed()                {}

// Items returns the item schema; nil when none was attached.
func (a *ArraySchema) Items() Schema { return a.spec.Items }

// TypeSpec holds the fields of a primitive type schema. Optional numeric and
// length bounds are pointers; nil means unset.
type TypeSpec struct {
	Name        string
	Description string
	Required    bool

	Type    string
	Format  string
	Example any
	Enum    []any

	// number and integer only
	Minimum          *float64
	ExclusiveMinimum bool
	Maximum          *float64
	ExclusiveMaximum bool
	MultipleOf       *float64

	// string only
	Pattern   string
	MinLength *int
	MaxLength *int
}

// TypeSchema is an immutable primitive type schema.
type TypeSchema struct{ spec TypeSpec }

// NewTypeSchema copies spec into an immutable type schema.
func NewTypeSchema(spec TypeSpec) *TypeSchema { return &TypeSchema{spec: spec.clone()} }

func (t *TypeSchema) Kind() SchemaKind     { return KindType }
func (t *TypeSchema) Name() string         { return t.spec.Name }
func (t *TypeSchema) IsRequired() bool     { return t.spec.Required }
func (t *TypeSchema) DeclaredType() string { return t.spec.Type }
func (t *TypeSchema) Description() string  { return t.spec.Description }
func (*TypeSchema) sealed()                {}

// Spec returns a copy of the schema fields.
func (t *TypeSchema) Spec() TypeSpec { return t.spec.clone() }

func (s TypeSpec) clone() TypeSpec {
	s.Enum = append([]any(nil), s.Enum...)
	s.Minimum = cloneFloat(s.Minimum)
	s.Maximum = cloneFloat(s.Maximum)
	s.MultipleOf = cloneFloat(s.MultipleOf)
	s.MinLength = cloneInt(s.MinLength)
	s.MaxLength = cloneInt(s.MaxLength)
	return s
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// RefSchema is a reference handle: the name of a registered schema and the
// type it declares. It never needs the target body, so it can be created
// before the target finishes building.
type RefSchema struct {
	name     string
	typ      string
	required bool
}

// NewRef creates a reference handle without consulting any registry.
func NewRef(name, typ string) *RefSchema { return &RefSchema{name: name, typ: typ} }

func (r *RefSchema) Kind() SchemaKind     { return KindRef }
func (r *RefSchema) Name() string         { return r.name }
func (r *RefSchema) IsRequired() bool     { return r.required }
func (r *RefSchema) DeclaredType() string { return r.typ }
func (*RefSchema) sealed()                {}

// AsRequired returns a copy of the handle with the required flag set.
func (r *RefSchema) AsRequired() *RefSchema {
	c := *r
	c.required = true
	return &c
}

// Pointer returns the JSON reference to the registered body.
func (r *RefSchema) Pointer() string { return "#/definitions/" + r.name }

// NamedSchema is one registry entry.
type NamedSchema struct {
	Name   string
	Schema Schema
}
