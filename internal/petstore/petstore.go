// Package petstore declares the reference document served by the CLI and
// used by golden tests.
package petstore

import (
	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
	"github.com/FlowMo7/SwaggerDSL/dsl"
)

// Setup declares the petstore API on d.
func Setup(d *dsl.Document) {
	d.Info(func(i *dsl.InfoScope) {
		i.Title("Swagger Petstore").
			Version("1.0.0").
			Description("A sample pet store server.\nIt demonstrates the document builder.").
			Host("petstore.example.com").
			BasePath("/v2").
			Schemes("https", "http")
	})
	d.Tag("pet", "Everything about your pets").
		Tag("store", "Access to petstore orders")

	category := d.DefineObject("Category", func(o *dsl.ObjectBuilder) {
		o.Property("id", dsl.Integer().Format("int64")).
			Property("name", dsl.String())
	})
	pet := d.DefineObject("Pet", func(o *dsl.ObjectBuilder) {
		o.Description("A pet for sale").
			Property("id", dsl.Integer().Format("int64")).
			Property("category", category).
			Property("name", dsl.String().Example("doggie").Required()).
			Property("photoUrls", dsl.Array(dsl.String()).Required()).
			Property("status", dsl.String().Description("pet status in the store").Enum("available", "pending", "sold")).
			Property("parent", o.Self())
	})
	order := d.DefineObject("Order", func(o *dsl.ObjectBuilder) {
		o.Property("id", dsl.Integer().Format("int64")).
			Property("petId", dsl.Integer().Format("int64").Required()).
			Property("quantity", dsl.Integer().Format("int32").Minimum(1, false).Maximum(100, false)).
			Property("complete", dsl.Boolean())
	})
	apiError := d.DefineObject("Error", func(o *dsl.ObjectBuilder) {
		o.Property("code", dsl.Integer().Format("int32").Required()).
			Property("message", dsl.String().Required())
	})

	d.Get("/pets", func(op *dsl.OperationScope) {
		op.Tags("pet").
			Summary("Finds pets by status").
			OperationID("findPetsByStatus").
			Produces("application/json").
			QueryParam("status", func(p *dsl.ParamScope) {
				p.Description("Status values to filter by").
					Required().
					Array(swaggerdsl.CollectionMulti, dsl.String().Enum("available", "pending", "sold"))
			}).
			QueryParam("limit", func(p *dsl.ParamScope) {
				p.Schema(dsl.Integer().Format("int32").Minimum(1, false).Maximum(50, false))
			}).
			Response(200, "successful operation", dsl.Array(pet)).
			Response(400, "Invalid status value", apiError)
	})
	d.Post("/pets", func(op *dsl.OperationScope) {
		op.Tags("pet").
			Summary("Add a new pet to the store").
			OperationID("addPet").
			Consumes("application/json").
			Produces("application/json").
			BodyParam("body", func(b *dsl.BodyParamScope) {
				b.Description("Pet object that needs to be added to the store").Required().Schema(pet)
			}).
			Response(201, "Created", pet).
			Response(405, "Invalid input", nil)
	})
	d.Get("/pets/{petId}", func(op *dsl.OperationScope) {
		op.Tags("pet").
			Summary("Find pet by ID").
			OperationID("getPetById").
			Produces("application/json").
			PathParam("petId", func(p *dsl.ParamScope) {
				p.Description("ID of pet to return").Type(swaggerdsl.TypeInteger).Format("int64")
			}).
			Response(200, "successful operation", pet).
			Response(404, "Pet not found", nil)
	})
	d.Delete("/pets/{petId}", func(op *dsl.OperationScope) {
		op.Tags("pet").
			Summary("Deletes a pet").
			OperationID("deletePet").
			Deprecated().
			HeaderParam("api_key", func(p *dsl.ParamScope) { p.Type(swaggerdsl.TypeString) }).
			PathParam("petId", func(p *dsl.ParamScope) {
				p.Type(swaggerdsl.TypeInteger).Format("int64")
			}).
			Response(204, "Deleted", nil)
	})
	d.Post("/store/order", func(op *dsl.OperationScope) {
		op.Tags("store").
			Summary("Place an order for a pet").
			OperationID("placeOrder").
			BodyParam("body", func(b *dsl.BodyParamScope) { b.Required().Schema(order) }).
			Response(200, "successful operation", order)
	})
}

// Definition builds the petstore document.
func Definition() (*swaggerdsl.Definition, error) { return dsl.Build(Setup) }
