// Package dsl provides the validating builder for swaggerdsl documents.
//
// Overview
//   - Build(setup): run a setup routine against a fresh Document and get an immutable *swaggerdsl.Definition.
//   - Scopes: Document, InfoScope, OperationScope, ParamScope and BodyParamScope each expose only the calls
//     legal at their level, so e.g. a parameter setter cannot be reached outside a parameter.
//   - Schemas: Type/String/Integer/Number/Boolean, Array(items) and Object() build anonymous schemas;
//     Document.Define/DefineObject register named ones and return a Ref that renders as $ref.
//   - Recursion: inside DefineObject, o.Self() is a Ref to the object being built.
//
// Error model
//   - The first violation is recorded at the offending call; later calls become no-ops and Build
//     returns the violation as swaggerdsl.Issues. There is no partial result.
//   - Duplicate tags (ignoring case), (path, method) pairs, schema names, property names, parameters
//     and response codes are rejected at the call that introduces them.
//   - Cross-field rules (parameter type resolution, items on arrays, type-specific schema fields,
//     format sets) run when the enclosing entity is finalized.
//   - Issue paths are JSON Pointers through the containing entities, e.g.
//     /definitions/Pet/properties/owner/properties/age/pattern.
//
// Example
//
//	def, err := dsl.Build(func(d *dsl.Document) {
//	    d.Tag("pet", "Everything about pets")
//	    node := d.DefineObject("Node", func(o *dsl.ObjectBuilder) {
//	        o.Property("value", dsl.String().Required()).
//	            Property("next", o.Self())
//	    })
//	    d.Get("/nodes/{id}", func(op *dsl.OperationScope) {
//	        op.Tags("pet").
//	            PathParam("id", func(p *dsl.ParamScope) { p.Type("string") }).
//	            Response(200, "OK", node)
//	    })
//	})
package dsl
