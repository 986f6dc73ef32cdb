package dsl

import (
	"fmt"
	"strconv"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// OperationScope configures one path entry.
type OperationScope struct {
	st     *state
	at     swaggerdsl.PathRef
	op     swaggerdsl.Operation
	params map[string]struct{} // in + " " + name
	codes  map[int]struct{}
}

func newOperationScope(st *state, at swaggerdsl.PathRef, path, method string) *OperationScope {
	return &OperationScope{
		st:     st,
		at:     at,
		op:     swaggerdsl.Operation{Path: path, Method: method},
		params: map[string]struct{}{},
		codes:  map[int]struct{}{},
	}
}

// Tags appends tag names the operation is grouped under.
func (o *OperationScope) Tags(names ...string) *OperationScope {
	o.op.Tags = append(o.op.Tags, names...)
	return o
}

// Summary sets the short summary.
func (o *OperationScope) Summary(s string) *OperationScope { o.op.Summary = s; return o }

// Description sets the description; it may span several lines.
func (o *OperationScope) Description(s string) *OperationScope { o.op.Description = s; return o }

// OperationID sets the operation id. Ids are unique across the document.
func (o *OperationScope) OperationID(id string) *OperationScope { o.op.OperationID = id; return o }

// Deprecated marks the operation as deprecated.
func (o *OperationScope) Deprecated() *OperationScope { o.op.Deprecated = true; return o }

// Produces appends response media types.
func (o *OperationScope) Produces(types ...string) *OperationScope {
	o.op.Produces = append(o.op.Produces, types...)
	return o
}

// Consumes appends request media types.
func (o *OperationScope) Consumes(types ...string) *OperationScope {
	o.op.Consumes = append(o.op.Consumes, types...)
	return o
}

// PathParam declares a path parameter. Path parameters are always required.
func (o *OperationScope) PathParam(name string, fn func(p *ParamScope)) *OperationScope {
	return o.param(name, swaggerdsl.InPath, fn)
}

// QueryParam declares a query parameter.
func (o *OperationScope) QueryParam(name string, fn func(p *ParamScope)) *OperationScope {
	return o.param(name, swaggerdsl.InQuery, fn)
}

// HeaderParam declares a header parameter.
func (o *OperationScope) HeaderParam(name string, fn func(p *ParamScope)) *OperationScope {
	return o.param(name, swaggerdsl.InHeader, fn)
}

// FormParam declares a form-data parameter.
func (o *OperationScope) FormParam(name string, fn func(p *ParamScope)) *OperationScope {
	return o.param(name, swaggerdsl.InFormData, fn)
}

// BodyParam declares the body parameter.
func (o *OperationScope) BodyParam(name string, fn func(b *BodyParamScope)) *OperationScope {
	at, ok := o.claimParam(name, swaggerdsl.InBody)
	if !ok {
		return o
	}
	b := &BodyParamScope{name: name}
	if fn != nil {
		fn(b)
	}
	if o.st.failed() {
		return o
	}
	p, iss := b.finalize()
	if len(iss) > 0 {
		o.st.fail(iss.Rebase(at))
		return o
	}
	o.op.Parameters = append(o.op.Parameters, p)
	return o
}

func (o *OperationScope) param(name string, in swaggerdsl.Placement, fn func(p *ParamScope)) *OperationScope {
	at, ok := o.claimParam(name, in)
	if !ok {
		return o
	}
	p := &ParamScope{st: o.st, at: at, name: name, in: in}
	if fn != nil {
		fn(p)
	}
	if o.st.failed() {
		return o
	}
	param, iss := p.finalize()
	if len(iss) > 0 {
		o.st.fail(iss.Rebase(at))
		return o
	}
	o.op.Parameters = append(o.op.Parameters, param)
	return o
}

// claimParam enforces (name, placement) uniqueness within the operation.
func (o *OperationScope) claimParam(name string, in swaggerdsl.Placement) (swaggerdsl.PathRef, bool) {
	if o.st.failed() {
		return nil, false
	}
	at := o.at.Field("parameters").Field(name)
	if name == "" {
		o.st.fail(swaggerdsl.IssueAt(o.at.Field("parameters"), swaggerdsl.CodeIllegalFieldCombination, "parameter name is empty"))
		return nil, false
	}
	key := string(in) + " " + name
	if _, dup := o.params[key]; dup {
		o.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("%s parameter %q is already declared", in, name)))
		return nil, false
	}
	o.params[key] = struct{}{}
	return at, true
}

// Response declares the response for a status code. schema may be nil.
func (o *OperationScope) Response(code int, description string, schema SchemaBuilder) *OperationScope {
	if o.st.failed() {
		return o
	}
	at := o.at.Field("responses").Field(strconv.Itoa(code))
	if code < 100 || code > 599 {
		o.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeIllegalFieldCombination, fmt.Sprintf("status code %d is out of range", code)))
		return o
	}
	if _, dup := o.codes[code]; dup {
		o.st.fail(swaggerdsl.IssueAt(at, swaggerdsl.CodeDuplicateName, fmt.Sprintf("response %d is already declared", code)))
		return o
	}
	o.codes[code] = struct{}{}
	r := swaggerdsl.Response{Code: code, Description: description}
	if schema != nil {
		s, iss := finalizeChild(schema, at.Field("schema"))
		if len(iss) > 0 {
			o.st.fail(iss)
			return o
		}
		r.Schema = s
	}
	o.op.Responses = append(o.op.Responses, r)
	return o
}
