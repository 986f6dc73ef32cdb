// Package swaggeryaml renders a *swaggerdsl.Definition as a Swagger 2.0 YAML
// document with a fixed layout:
//
//	swagger: '2.0'
//	info:
//	  description: |
//	    Multi-line text becomes a block literal.
//	  version: "1.0.0"
//	  title: "Petstore"
//	host: "petstore.example.com"
//	basePath: "/v1"
//	schemes:
//	  - "https"
//	tags: ...
//	paths: ...
//	definitions: ...
//
// Free text is double-quoted; keywords such as type, in, format and
// collectionFormat are plain; numbers and booleans are unquoted; status codes
// are plain integer keys; uses of registered schemas render as
// $ref: '#/definitions/<name>'. Operations sharing a path are nested under a
// single path key. Indentation is two spaces per level and lines are never
// wrapped.
package swaggeryaml
