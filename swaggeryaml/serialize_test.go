package swaggeryaml_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
	"github.com/FlowMo7/SwaggerDSL/dsl"
	"github.com/FlowMo7/SwaggerDSL/internal/petstore"
	"github.com/FlowMo7/SwaggerDSL/swaggeryaml"
)

func mustPetstore(t *testing.T) *swaggerdsl.Definition {
	t.Helper()
	def, err := petstore.Definition()
	if err != nil {
		t.Fatalf("build petstore: %v", err)
	}
	return def
}

func TestSerialize_PetstoreGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/petstore.golden.yaml")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	got := swaggeryaml.Serialize(mustPetstore(t))
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("petstore output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	def := mustPetstore(t)
	a := swaggeryaml.Serialize(def)
	b := swaggeryaml.Serialize(def)
	if a != b {
		t.Fatalf("serializing twice produced different output")
	}
	var buf bytes.Buffer
	if err := swaggeryaml.Write(&buf, def); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != a {
		t.Fatalf("Write and Serialize disagree")
	}
}

func TestSerialize_Concurrent(t *testing.T) {
	def := mustPetstore(t)
	want := swaggeryaml.Serialize(def)
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := swaggeryaml.Serialize(def); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	if got, ok := <-errs; ok {
		t.Fatalf("concurrent output differs:\n%s", got)
	}
}

func TestSerialize_BlockLiteralsAndStatusCodes(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Info(func(i *dsl.InfoScope) {
			i.Description("First line\nSecond line\nThird line").Version("1.0").Title("Demo")
		})
		d.Tag("demo", "Tag line one\nTag line two")
		d.Get("/status", func(op *dsl.OperationScope) {
			op.Tags("demo").
				Summary("Status").
				Response(200, "OK", nil).
				Response(500, "Server error", nil)
		})
	})
	want := `swagger: '2.0'
info:
  description: |
    First line
    Second line
    Third line
  version: "1.0"
  title: "Demo"
schemes: []
tags:
  - name: "demo"
    description: |
      Tag line one
      Tag line two
paths:
  /status:
    get:
      tags:
        - "demo"
      summary: "Status"
      responses:
        200:
          description: "OK"
        500:
          description: "Server error"
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_RequiredListOnlyExplicit(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.DefineObject("User", func(o *dsl.ObjectBuilder) {
			o.Property("zeta", dsl.String().Required()).
				Property("alpha", dsl.String()).
				Property("tags", dsl.Array(dsl.String()).Required()).
				Property("address", dsl.Object().Property("city", dsl.String()))
		})
	})
	want := `swagger: '2.0'
definitions:
  User:
    type: object
    required:
      - "zeta"
      - "tags"
    properties:
      zeta:
        type: string
      alpha:
        type: string
      tags:
        type: array
        items:
          type: string
      address:
        type: object
        properties:
          city:
            type: string
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_MethodsGroupedUnderOnePathKey(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Get("/a", func(op *dsl.OperationScope) { op.Response(200, "OK", nil) })
		d.Get("/b", func(op *dsl.OperationScope) { op.Response(200, "OK", nil) })
		d.Post("/a", func(op *dsl.OperationScope) { op.Response(201, "Created", nil) })
		d.Delete("/a", func(op *dsl.OperationScope) { op.Response(204, "Deleted", nil) })
	})
	out := swaggeryaml.Serialize(def)
	if n := strings.Count(out, "\n  /a:\n"); n != 1 {
		t.Fatalf("expected one /a key, got %d in:\n%s", n, out)
	}
	// first-seen order of paths, insertion order of methods
	ia := strings.Index(out, "  /a:\n    get:")
	ib := strings.Index(out, "  /b:\n    get:")
	ipost := strings.Index(out, "    post:")
	idel := strings.Index(out, "    delete:")
	if ia < 0 || ib < 0 || ipost < 0 || idel < 0 {
		t.Fatalf("missing entries in:\n%s", out)
	}
	if !(ia < ipost && ipost < idel && idel < ib) {
		t.Fatalf("unexpected ordering in:\n%s", out)
	}
}

func TestSerialize_SelfReference(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.DefineObject("Node", func(o *dsl.ObjectBuilder) {
			o.Property("value", dsl.Integer()).
				Property("children", dsl.Array(o.Self())).
				Property("next", o.Self())
		})
	})
	want := `swagger: '2.0'
definitions:
  Node:
    type: object
    properties:
      value:
        type: integer
      children:
        type: array
        items:
          $ref: '#/definitions/Node'
      next:
        $ref: '#/definitions/Node'
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_ArrayQueryParameter(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Get("/search", func(op *dsl.OperationScope) {
			op.QueryParam("ids", func(p *dsl.ParamScope) {
				p.Array(swaggerdsl.CollectionCSV, dsl.String())
			}).Response(200, "OK", nil)
		})
	})
	want := `      parameters:
        - name: "ids"
          in: query
          type: array
          collectionFormat: csv
          items:
            type: string
`
	if out := swaggeryaml.Serialize(def); !strings.Contains(out, want) {
		t.Fatalf("expected fragment:\n%s\nin:\n%s", want, out)
	}
}

func TestSerialize_TypeFieldsAndScalars(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Define("Price", dsl.Number().
			Format("double").
			Description(`Price in "EUR" \ cents`).
			Example(12.5).
			Minimum(0, true).
			Maximum(1000, false).
			MultipleOf(0.5))
		d.Define("Code", dsl.String().
			Pattern(`^[A-Z]{3}$`).
			MinLength(3).
			MaxLength(3).
			Enum("EUR", "USD"))
		d.Define("Level", dsl.Integer().Enum(1, 2, 3).Example(map[string]int{"level": 2}))
	})
	want := `swagger: '2.0'
definitions:
  Price:
    type: number
    format: double
    description: "Price in \"EUR\" \\ cents"
    example: 12.5
    minimum: 0
    exclusiveMinimum: true
    maximum: 1000
    multipleOf: 0.5
  Code:
    type: string
    enum:
      - "EUR"
      - "USD"
    pattern: "^[A-Z]{3}$"
    minLength: 3
    maxLength: 3
  Level:
    type: integer
    example: {"level":2}
    enum:
      - 1
      - 2
      - 3
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_EmptyInfo(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Info(func(i *dsl.InfoScope) { i.Host("api.example.com") })
	})
	want := `swagger: '2.0'
info: {}
host: "api.example.com"
schemes: []
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_ArrayWithoutItemsDoesNotPanic(t *testing.T) {
	def := swaggerdsl.NewDefinition(swaggerdsl.DefinitionSpec{
		Definitions: []swaggerdsl.NamedSchema{{Name: "Loose", Schema: swaggerdsl.NewArraySchema(swaggerdsl.ArraySpec{})}},
	})
	want := "swagger: '2.0'\ndefinitions:\n  Loose:\n    type: array\n"
	if got := swaggeryaml.Serialize(def); got != want {
		t.Fatalf("got:\n%s", got)
	}
}

func TestSerialize_RoundTripsThroughYAML(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		petstore.Setup(d)
		d.Tag("quotes", "She said \"hi\" \\o/\n\nand left")
		d.Tag("indented", "  indented first\nsecond")
		d.Tag("carriage", "x\ry")
		d.Get("/indented", func(op *dsl.OperationScope) {
			op.Description("\n    code sample\nplain").Response(200, "OK", nil)
		})
	})
	var doc map[string]any
	if err := yaml.Unmarshal(swaggeryaml.Bytes(def), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc["swagger"] != "2.0" {
		t.Fatalf("swagger = %#v", doc["swagger"])
	}
	if got := at(t, doc, "info", "title"); got != "Swagger Petstore" {
		t.Fatalf("info.title = %#v", got)
	}
	if got := at(t, doc, "info", "description"); got != "A sample pet store server.\nIt demonstrates the document builder.\n" {
		t.Fatalf("info.description = %#v", got)
	}
	tags, _ := doc["tags"].([]any)
	if len(tags) != 5 {
		t.Fatalf("tags = %#v", doc["tags"])
	}
	if got := at(t, tags[2], "description"); got != "She said \"hi\" \\o/\n\nand left\n" {
		t.Fatalf("tag description = %#v", got)
	}
	if got := at(t, tags[3], "description"); got != "  indented first\nsecond\n" {
		t.Fatalf("indented description = %#v", got)
	}
	if got := at(t, tags[4], "description"); got != "x\ny\n" {
		t.Fatalf("carriage return description = %#v", got)
	}
	if got := at(t, doc, "paths", "/indented", "get", "description"); got != "\n    code sample\nplain\n" {
		t.Fatalf("operation description = %#v", got)
	}
	if got := at(t, doc, "paths", "/pets/{petId}", "get", "responses", 200, "schema", "$ref"); got != "#/definitions/Pet" {
		t.Fatalf("$ref = %#v", got)
	}
	if got := at(t, doc, "paths", "/pets/{petId}", "delete", "deprecated"); got != true {
		t.Fatalf("deprecated = %#v", got)
	}
	if got := at(t, doc, "definitions", "Order", "properties", "quantity", "maximum"); got != 100 {
		t.Fatalf("maximum = %#v", got)
	}
	req, _ := at(t, doc, "definitions", "Pet", "required").([]any)
	if diff := cmp.Diff([]any{"name", "photoUrls"}, req); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_IndentedBlockLiteral(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		d.Tag("code", "  go build\nthen run")
		d.Define("Snippet", dsl.String().Enum("  a\nb"))
	})
	want := `swagger: '2.0'
tags:
  - name: "code"
    description: |2
        go build
      then run
definitions:
  Snippet:
    type: string
    enum:
      - |2
          a
        b
`
	if diff := cmp.Diff(want, swaggeryaml.Serialize(def)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(want), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	enum, _ := at(t, doc, "definitions", "Snippet", "enum").([]any)
	if len(enum) != 1 || enum[0] != "  a\nb\n" {
		t.Fatalf("enum = %#v", enum)
	}
}

func TestSerialize_NumericLookingKeysAreQuoted(t *testing.T) {
	def := dsl.MustBuild(func(d *dsl.Document) {
		for _, name := range []string{"123", "1.5", "0x1F", "Pet"} {
			d.Define(name, dsl.String())
		}
	})
	out := swaggeryaml.Serialize(def)
	for _, line := range []string{"\n  \"123\":\n", "\n  \"1.5\":\n", "\n  \"0x1F\":\n", "\n  Pet:\n"} {
		if !strings.Contains(out, line) {
			t.Fatalf("expected %q in:\n%s", line, out)
		}
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	defs, ok := doc["definitions"].(map[string]any)
	if !ok {
		t.Fatalf("definition keys did not all decode as strings: %#v", doc["definitions"])
	}
	for _, name := range []string{"123", "1.5", "0x1F", "Pet"} {
		if _, ok := defs[name]; !ok {
			t.Fatalf("missing definition %q in %#v", name, defs)
		}
	}
}

// at walks decoded YAML; integer keys (status codes) decode into
// map[any]any.
func at(t *testing.T, v any, keys ...any) any {
	t.Helper()
	for _, k := range keys {
		switch m := v.(type) {
		case map[string]any:
			v = m[fmt.Sprint(k)]
		case map[any]any:
			v = m[k]
		default:
			t.Fatalf("cannot index %T with %v", v, k)
		}
	}
	return v
}
