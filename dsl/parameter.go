package dsl

import (
	"fmt"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// ParamScope configures a path, query, header or form-data parameter. The
// parameter must end up with a type: set directly with Type, through Array,
// or through a type Schema.
type ParamScope struct {
	st   *state
	at   swaggerdsl.PathRef
	name string
	in   swaggerdsl.Placement

	description string
	required    bool

	typ    string
	format string
	enum   []any
	schema SchemaBuilder

	isArray          bool
	collectionFormat string
	items            SchemaBuilder
}

// Description sets the description.
func (p *ParamScope) Description(s string) *ParamScope { p.description = s; return p }

// Required marks the parameter as required. Path parameters are required
// regardless.
func (p *ParamScope) Required() *ParamScope { p.required = true; return p }

// Type sets the primitive type directly.
func (p *ParamScope) Type(t string) *ParamScope {
	if !swaggerdsl.IsPrimitiveType(t) {
		p.st.fail(swaggerdsl.IssueAt(p.at.Field("type"), swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("unsupported type %q", t)))
		return p
	}
	p.typ = t
	return p
}

// Format sets the format of a directly typed parameter.
func (p *ParamScope) Format(f string) *ParamScope { p.format = f; return p }

// Enum appends allowed values of a directly typed parameter.
func (p *ParamScope) Enum(vs ...any) *ParamScope { p.enum = append(p.enum, vs...); return p }

// Schema types the parameter from a type schema; its fields are inlined.
func (p *ParamScope) Schema(s SchemaBuilder) *ParamScope { p.schema = s; return p }

// Array types the parameter as an array encoded with format (csv, ssv, tsv,
// pipes or multi; empty leaves the default). "multi" is only legal for query
// and form-data parameters.
func (p *ParamScope) Array(format string, items SchemaBuilder) *ParamScope {
	at := p.at.Field("collectionFormat")
	if format != "" && !swaggerdsl.IsCollectionFormat(format) {
		p.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("unsupported collection format %q", format)))
		return p
	}
	if format == swaggerdsl.CollectionMulti && !p.in.AllowsMulti() {
		p.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("collection format multi is not allowed for %s parameters", p.in)))
		return p
	}
	p.isArray = true
	p.collectionFormat = format
	p.items = items
	return p
}

func (p *ParamScope) finalize() (swaggerdsl.Parameter, swaggerdsl.Issues) {
	out := swaggerdsl.Parameter{
		Name:        p.name,
		In:          p.in,
		Description: p.description,
		Required:    p.required || p.in == swaggerdsl.InPath,
	}
	illegal := func(field, hint string) (swaggerdsl.Parameter, swaggerdsl.Issues) {
		return swaggerdsl.Parameter{}, swaggerdsl.IssueAt(swaggerdsl.Root().Field(field), swaggerdsl.CodeIllegalFieldCombination, hint)
	}

	sources := 0
	for _, set := range []bool{p.typ != "", p.schema != nil, p.isArray} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return illegal("type", "use only one of Type, Schema and Array")
	}
	if (p.format != "" || len(p.enum) > 0) && p.typ == "" {
		return illegal("format", "format and enum apply to a directly typed parameter")
	}

	switch {
	case p.isArray:
		if p.items == nil {
			return illegal("items", "array parameter requires an items schema")
		}
		items, iss := finalizeChild(p.items, swaggerdsl.Root().Field("items"))
		if len(iss) > 0 {
			return swaggerdsl.Parameter{}, iss
		}
		out.Type = swaggerdsl.TypeArray
		out.CollectionFormat = p.collectionFormat
		out.Items = items
	case p.schema != nil:
		s, iss := finalizeChild(p.schema, swaggerdsl.Root().Field("schema"))
		if len(iss) > 0 {
			return swaggerdsl.Parameter{}, iss
		}
		if _, ok := s.(*swaggerdsl.TypeSchema); !ok {
			return illegal("schema", fmt.Sprintf("%s parameters take a type schema, got %s", p.in, s.Kind()))
		}
		out.Type = s.DeclaredType()
		out.Schema = s
	case p.typ != "":
		if p.typ == swaggerdsl.TypeArray {
			return illegal("type", "array parameters are declared with Array(format, items)")
		}
		if hint, ok := checkFormat(p.typ, p.format); !ok {
			return illegal("format", hint)
		}
		if iss := checkEnum(swaggerdsl.Root(), p.enum); len(iss) > 0 {
			return swaggerdsl.Parameter{}, iss
		}
		out.Type = p.typ
		out.Format = p.format
		out.Enum = append([]any(nil), p.enum...)
	default:
		return illegal("type", fmt.Sprintf("%s parameter %q has no type", p.in, p.name))
	}
	return out, nil
}

// BodyParamScope configures the body parameter, which is described by a
// schema rather than a type.
type BodyParamScope struct {
	name        string
	description string
	required    bool
	schema      SchemaBuilder
}

// Description sets the description.
func (b *BodyParamScope) Description(s string) *BodyParamScope { b.description = s; return b }

// Required marks the body as required.
func (b *BodyParamScope) Required() *BodyParamScope { b.required = true; return b }

// Schema sets the body schema.
func (b *BodyParamScope) Schema(s SchemaBuilder) *BodyParamScope { b.schema = s; return b }

func (b *BodyParamScope) finalize() (swaggerdsl.Parameter, swaggerdsl.Issues) {
	out := swaggerdsl.Parameter{
		Name:        b.name,
		In:          swaggerdsl.InBody,
		Description: b.description,
		Required:    b.required,
	}
	if b.schema == nil {
		return out, nil
	}
	s, iss := finalizeChild(b.schema, swaggerdsl.Root().Field("schema"))
	if len(iss) > 0 {
		return swaggerdsl.Parameter{}, iss
	}
	out.Schema = s
	return out, nil
}
