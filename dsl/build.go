package dsl

import (
	swaggerdsl "github.com/FlowMo7/SwaggerDSL"
)

// state is shared by every scope of one construction pass. The first
// violation wins; every later call becomes a no-op.
type state struct {
	iss swaggerdsl.Issues
	reg *swaggerdsl.Registry
}

func (s *state) failed() bool { return len(s.iss) > 0 }

func (s *state) fail(iss swaggerdsl.Issues) {
	if s.failed() || len(iss) == 0 {
		return
	}
	s.iss = iss
}

// Build runs setup against a fresh Document and returns the finished
// Definition. Any violation fails the whole build; there is no partial
// result.
func Build(setup func(d *Document)) (*swaggerdsl.Definition, error) {
	d := newDocument()
	if setup != nil {
		setup(d)
	}
	return d.finalize()
}

// MustBuild is like Build but panics on error.
func MustBuild(setup func(d *Document)) *swaggerdsl.Definition {
	def, err := Build(setup)
	if err != nil {
		panic(err)
	}
	return def
}
