// Package swaggerdsl provides:
//
// - An immutable Swagger 2.0 document model (Definition, Info, Tag, Operation, Parameter, Response, Schema)
// - A schema Registry that interns named schemas and hands out lightweight reference handles
// - A stable error model via Issues (JSON Pointer, code, message) matchable with errors.Is
//
// Design policy:
// - Keep only the model and error types in the root package.
// - Place the validating builder under dsl/, the YAML serializer under swaggeryaml/,
//   the static UI responder under swaggerui/ and the CLI under cmd/swaggerdsl.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	def, err := dsl.Build(func(d *dsl.Document) {
//		d.Info(func(i *dsl.InfoScope) { i.Title("Petstore").Version("1.0.0") })
//		pet := d.DefineObject("Pet", func(o *dsl.ObjectBuilder) {
//			o.Property("name", dsl.String().Required())
//		})
//		d.Get("/pets", func(op *dsl.OperationScope) {
//			op.Response(200, "OK", dsl.Array(pet))
//		})
//	})
//	out := swaggeryaml.Serialize(def)
package swaggerdsl
