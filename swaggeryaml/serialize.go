package swaggeryaml

import (
	"fmt"
	"io"
	"strconv"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// Serialize renders def as a YAML document. The output depends only on def,
// so it is byte-stable across calls; it may run concurrently on the same
// Definition.
//
// def is assumed to satisfy the dsl builder invariants; a hand-built model
// that breaks them may render oddly or panic.
func Serialize(def *swaggerdsl.Definition) string { return string(Bytes(def)) }

// Bytes is like Serialize but returns the UTF-8 bytes.
func Bytes(def *swaggerdsl.Definition) []byte {
	w := &writer{}
	writeDefinition(w, def)
	return w.buf
}

// Write renders def to out.
func Write(out io.Writer, def *swaggerdsl.Definition) error {
	_, err := out.Write(Bytes(def))
	return err
}

func writeDefinition(w *writer, def *swaggerdsl.Definition) {
	w.plain(0, "swagger", singleQuote(def.Version()))
	if info, ok := def.Info(); ok {
		writeInfo(w, info)
	}
	if tags := def.Tags(); len(tags) > 0 {
		w.line(0, "tags:")
		for _, t := range tags {
			w.item(1, func(d int) {
				w.text(d, "name", t.Name)
				w.text(d, "description", t.Description)
			})
		}
	}
	if ops := def.Paths(); len(ops) > 0 {
		w.line(0, "paths:")
		for _, group := range groupByPath(ops) {
			w.line(1, key(group[0].Path)+":")
			for _, op := range group {
				w.line(2, op.Method+":")
				writeOperation(w, 3, op)
			}
		}
	}
	if defs := def.Definitions(); len(defs) > 0 {
		w.line(0, "definitions:")
		for _, ns := range defs {
			w.line(1, key(ns.Name)+":")
			writeSchema(w, 2, ns.Schema)
		}
	}
}

func writeInfo(w *writer, info swaggerdsl.Info) {
	if info.Description == "" && info.Version == "" && info.Title == "" {
		w.line(0, "info: {}")
	} else {
		w.line(0, "info:")
		w.text(1, "description", info.Description)
		w.text(1, "version", info.Version)
		w.text(1, "title", info.Title)
	}
	w.text(0, "host", info.Host)
	w.text(0, "basePath", info.BasePath)
	if len(info.Schemes) == 0 {
		w.line(0, "schemes: []")
		return
	}
	w.texts(0, "schemes", info.Schemes)
}

// groupByPath groups operations sharing a path, in first-seen order of the
// path and insertion order within a path.
func groupByPath(ops []swaggerdsl.Operation) [][]swaggerdsl.Operation {
	idx := map[string]int{}
	var groups [][]swaggerdsl.Operation
	for _, op := range ops {
		i, ok := idx[op.Path]
		if !ok {
			i = len(groups)
			idx[op.Path] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], op)
	}
	return groups
}

func writeOperation(w *writer, depth int, op swaggerdsl.Operation) {
	w.texts(depth, "tags", op.Tags)
	w.text(depth, "summary", op.Summary)
	w.text(depth, "description", op.Description)
	w.text(depth, "operationId", op.OperationID)
	if op.Deprecated {
		w.plain(depth, "deprecated", "true")
	}
	w.texts(depth, "produces", op.Produces)
	w.texts(depth, "consumes", op.Consumes)
	if len(op.Parameters) > 0 {
		w.line(depth, "parameters:")
		for _, p := range op.Parameters {
			w.item(depth+1, func(d int) { writeParameter(w, d, p) })
		}
	}
	if len(op.Responses) > 0 {
		w.line(depth, "responses:")
		for _, r := range op.Responses {
			writeResponse(w, depth+1, r)
		}
	}
}

func writeParameter(w *writer, depth int, p swaggerdsl.Parameter) {
	w.text(depth, "name", p.Name)
	w.plain(depth, "in", string(p.In))
	w.text(depth, "description", p.Description)
	if p.Required {
		w.plain(depth, "required", "true")
	}
	if p.In == swaggerdsl.InBody {
		if p.Schema != nil {
			w.line(depth, "schema:")
			writeSchema(w, depth+1, p.Schema)
		}
		return
	}
	if ts, ok := p.Schema.(*swaggerdsl.TypeSchema); ok {
		spec := ts.Spec()
		spec.Description = ""
		writeTypeFields(w, depth, spec)
		return
	}
	if p.Type != "" {
		w.plain(depth, "type", p.Type)
	}
	if p.Format != "" {
		w.plain(depth, "format", p.Format)
	}
	if p.CollectionFormat != "" {
		w.plain(depth, "collectionFormat", p.CollectionFormat)
	}
	if p.Items != nil {
		w.line(depth, "items:")
		writeSchema(w, depth+1, p.Items)
	}
	w.values(depth, "enum", p.Enum)
}

func writeResponse(w *writer, depth int, r swaggerdsl.Response) {
	code := strconv.Itoa(r.Code)
	if r.Description == "" && r.Schema == nil {
		w.line(depth, code+": {}")
		return
	}
	w.line(depth, code+":")
	w.text(depth+1, "description", r.Description)
	if r.Schema != nil {
		w.line(depth+1, "schema:")
		writeSchema(w, depth+2, r.Schema)
	}
}

// writeSchema writes the body of s at depth. Every variant must be handled
// here; an unknown variant is a programming error.
func writeSchema(w *writer, depth int, s swaggerdsl.Schema) {
	switch v := s.(type) {
	case *swaggerdsl.RefSchema:
		w.plain(depth, "$ref", singleQuote(v.Pointer()))
	case *swaggerdsl.ObjectSchema:
		w.plain(depth, "type", swaggerdsl.TypeObject)
		w.text(depth, "description", v.Description())
		w.texts(depth, "required", v.RequiredProperties())
		if props := v.Properties(); len(props) > 0 {
			w.line(depth, "properties:")
			for _, p := range props {
				w.line(depth+1, key(p.Name)+":")
				writeSchema(w, depth+2, p.Schema)
			}
		}
	case *swaggerdsl.ArraySchema:
		w.plain(depth, "type", swaggerdsl.TypeArray)
		w.text(depth, "description", v.Description())
		if items := v.Items(); items != nil {
			w.line(depth, "items:")
			writeSchema(w, depth+1, items)
		}
	case *swaggerdsl.TypeSchema:
		writeTypeFields(w, depth, v.Spec())
	default:
		panic(fmt.Sprintf("swaggeryaml: unsupported schema variant %T", s))
	}
}

func writeTypeFields(w *writer, depth int, s swaggerdsl.TypeSpec) {
	w.plain(depth, "type", s.Type)
	if s.Format != "" {
		w.plain(depth, "format", s.Format)
	}
	w.text(depth, "description", s.Description)
	if s.Example != nil {
		w.value(depth, "example", s.Example)
	}
	w.values(depth, "enum", s.Enum)
	if s.Minimum != nil {
		w.plain(depth, "minimum", encodeJSON(*s.Minimum))
		if s.ExclusiveMinimum {
			w.plain(depth, "exclusiveMinimum", "true")
		}
	}
	if s.Maximum != nil {
		w.plain(depth, "maximum", encodeJSON(*s.Maximum))
		if s.ExclusiveMaximum {
			w.plain(depth, "exclusiveMaximum", "true")
		}
	}
	if s.MultipleOf != nil {
		w.plain(depth, "multipleOf", encodeJSON(*s.MultipleOf))
	}
	w.text(depth, "pattern", s.Pattern)
	if s.MinLength != nil {
		w.plain(depth, "minLength", strconv.Itoa(*s.MinLength))
	}
	if s.MaxLength != nil {
		w.plain(depth, "maxLength", strconv.Itoa(*s.MaxLength))
	}
}
