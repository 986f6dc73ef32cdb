package swaggerdsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FlowMo7/SwaggerDSL/i18n"
)

// PathRef builds JSON Pointer trails through the document in a chain-safe way
// and creates Issues located at them.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, hint string, kv ...any) Issue
}

// Root returns the document root path ("/").
func Root() PathRef { return &pathRef{parts: nil} }

// At parses a JSON Pointer into a PathRef.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue at p. The message comes from the current translator;
// kv pairs become Params.
func (p *pathRef) Issue(code, hint string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, nil), Hint: hint, Params: m}
}

// IssueAt creates an Issue at the given path with provided code and hint.
// This is a convenience helper to improve readability at call sites.
func IssueAt(p PathRef, code, hint string) Issues {
	return Issues{p.Issue(code, hint)}
}
