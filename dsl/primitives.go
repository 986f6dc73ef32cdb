package dsl

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// TypeBuilder builds a primitive type schema. The type string is checked
// when the builder is created; type-specific fields are checked when it is
// finalized.
type TypeBuilder struct {
	spec swaggerdsl.TypeSpec
	iss  swaggerdsl.Issues
}

// Type returns a schema of the given primitive type.
func Type(t string) *TypeBuilder {
	b := &TypeBuilder{spec: swaggerdsl.TypeSpec{Type: t}}
	if !swaggerdsl.IsPrimitiveType(t) {
		b.iss = swaggerdsl.IssueAt(swaggerdsl.Root().Field("type"), swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("unsupported type %q", t))
	}
	return b
}

// String returns a string schema.
func String() *TypeBuilder { return Type(swaggerdsl.TypeString) }

// Integer returns an integer schema.
func Integer() *TypeBuilder { return Type(swaggerdsl.TypeInteger) }

// Number returns a number schema.
func Number() *TypeBuilder { return Type(swaggerdsl.TypeNumber) }

// Boolean returns a boolean schema.
func Boolean() *TypeBuilder { return Type(swaggerdsl.TypeBoolean) }

// Description sets the description.
func (t *TypeBuilder) Description(s string) *TypeBuilder { t.spec.Description = s; return t }

// Required marks the schema as required in its enclosing object.
func (t *TypeBuilder) Required() *TypeBuilder { t.spec.Required = true; return t }

// Format sets the format (e.g. "int64", "date-time").
func (t *TypeBuilder) Format(f string) *TypeBuilder { t.spec.Format = f; return t }

// Example sets an example value.
func (t *TypeBuilder) Example(v any) *TypeBuilder { t.spec.Example = v; return t }

// Enum appends allowed values.
func (t *TypeBuilder) Enum(vs ...any) *TypeBuilder {
	t.spec.Enum = append(t.spec.Enum, vs...)
	return t
}

// Minimum sets the lower bound (number and integer only).
func (t *TypeBuilder) Minimum(v float64, exclusive bool) *TypeBuilder {
	t.spec.Minimum = &v
	t.spec.ExclusiveMinimum = exclusive
	return t
}

// Maximum sets the upper bound (number and integer only).
func (t *TypeBuilder) Maximum(v float64, exclusive bool) *TypeBuilder {
	t.spec.Maximum = &v
	t.spec.ExclusiveMaximum = exclusive
	return t
}

// MultipleOf sets the divisor (number and integer only).
func (t *TypeBuilder) MultipleOf(v float64) *TypeBuilder { t.spec.MultipleOf = &v; return t }

// Pattern sets the regular expression (string only).
func (t *TypeBuilder) Pattern(p string) *TypeBuilder { t.spec.Pattern = p; return t }

// MinLength sets the minimum length (string only).
func (t *TypeBuilder) MinLength(n int) *TypeBuilder { t.spec.MinLength = &n; return t }

// MaxLength sets the maximum length (string only).
func (t *TypeBuilder) MaxLength(n int) *TypeBuilder { t.spec.MaxLength = &n; return t }

func (t *TypeBuilder) finalize(name string) (swaggerdsl.Schema, swaggerdsl.Issues) {
	if len(t.iss) > 0 {
		return nil, t.iss
	}
	if t.spec.Type == swaggerdsl.TypeArray {
		return nil, swaggerdsl.IssueAt(swaggerdsl.Root().Field("type"), swaggerdsl.CodeIllegalFieldCombination, "array schemas are built with Array(items)")
	}
	if iss := checkTypeSpec(swaggerdsl.Root(), t.spec); len(iss) > 0 {
		return nil, iss
	}
	spec := t.spec
	spec.Name = name
	return swaggerdsl.NewTypeSchema(spec), nil
}

// checkTypeSpec applies the type-specific applicability rules.
func checkTypeSpec(at swaggerdsl.PathRef, s swaggerdsl.TypeSpec) swaggerdsl.Issues {
	var iss swaggerdsl.Issues
	illegal := func(field, hint string) {
		iss = swaggerdsl.AppendIssues(iss, at.Field(field).Issue(swaggerdsl.CodeIllegalFieldCombination, hint, "type", s.Type))
	}
	numeric := s.Type == swaggerdsl.TypeNumber || s.Type == swaggerdsl.TypeInteger

	if hint, ok := checkFormat(s.Type, s.Format); !ok {
		illegal("format", hint)
	}
	if s.Pattern != "" && s.Type != swaggerdsl.TypeString {
		illegal("pattern", "pattern is only allowed on string schemas")
	}
	if s.MinLength != nil && s.Type != swaggerdsl.TypeString {
		illegal("minLength", "minLength is only allowed on string schemas")
	}
	if s.MaxLength != nil && s.Type != swaggerdsl.TypeString {
		illegal("maxLength", "maxLength is only allowed on string schemas")
	}
	if s.MinLength != nil && *s.MinLength < 0 {
		illegal("minLength", "minLength must not be negative")
	}
	if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
		illegal("maxLength", "maxLength is smaller than minLength")
	}
	if s.Minimum != nil && !numeric {
		illegal("minimum", "minimum is only allowed on number and integer schemas")
	}
	if s.Maximum != nil && !numeric {
		illegal("maximum", "maximum is only allowed on number and integer schemas")
	}
	if s.MultipleOf != nil && !numeric {
		illegal("multipleOf", "multipleOf is only allowed on number and integer schemas")
	}
	for _, b := range []struct {
		field string
		v     *float64
	}{{"minimum", s.Minimum}, {"maximum", s.Maximum}, {"multipleOf", s.MultipleOf}} {
		if b.v != nil && (math.IsNaN(*b.v) || math.IsInf(*b.v, 0)) {
			illegal(b.field, b.field+" must be a finite number")
		}
	}
	if s.MultipleOf != nil && *s.MultipleOf <= 0 {
		illegal("multipleOf", "multipleOf must be greater than zero")
	}
	if s.Minimum != nil && s.Maximum != nil && *s.Minimum > *s.Maximum {
		illegal("maximum", "maximum is smaller than minimum")
	}
	iss = swaggerdsl.AppendIssues(iss, checkEnum(at, s.Enum)...)
	if s.Example != nil {
		if _, err := json.Marshal(s.Example); err != nil {
			illegal("example", err.Error())
		}
	}
	return iss
}

// checkFormat reports whether format is allowed for typ. String formats are
// open-ended; number and integer have fixed sets; other types take none.
func checkFormat(typ, format string) (string, bool) {
	if format == "" {
		return "", true
	}
	switch typ {
	case swaggerdsl.TypeString:
		return "", true
	case swaggerdsl.TypeNumber:
		if format == "float" || format == "double" {
			return "", true
		}
		return fmt.Sprintf("format %q is not allowed for number (float, double)", format), false
	case swaggerdsl.TypeInteger:
		if format == "int32" || format == "int64" {
			return "", true
		}
		return fmt.Sprintf("format %q is not allowed for integer (int32, int64)", format), false
	default:
		return fmt.Sprintf("format is not allowed for %s", typ), false
	}
}

// checkEnum reports enum values that have no JSON encoding.
func checkEnum(at swaggerdsl.PathRef, values []any) swaggerdsl.Issues {
	var iss swaggerdsl.Issues
	for i, v := range values {
		if _, err := json.Marshal(v); err != nil {
			iss = swaggerdsl.AppendIssues(iss, at.Field("enum").Index(i).Issue(swaggerdsl.CodeIllegalFieldCombination, err.Error()))
		}
	}
	return iss
}
