package swaggerdsl

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeDuplicateName           = "duplicate_name"
	CodeUnresolvedReference     = "unresolved_reference"
	CodeIllegalFieldCombination = "illegal_field_combination"
	CodeIllegalMutation         = "illegal_mutation"
)

// Sentinel errors matched by Issues.Is, one per issue code.
var (
	ErrDuplicateName           = errors.New("duplicate name")
	ErrUnresolvedReference     = errors.New("unresolved reference")
	ErrIllegalFieldCombination = errors.New("illegal field combination")
	ErrIllegalMutation         = errors.New("illegal mutation")
)

var sentinelByCode = map[string]error{
	CodeDuplicateName:           ErrDuplicateName,
	CodeUnresolvedReference:     ErrUnresolvedReference,
	CodeIllegalFieldCombination: ErrIllegalFieldCombination,
	CodeIllegalMutation:         ErrIllegalMutation,
}

// Issue represents a single construction-time violation.
type Issue struct {
	Path    string // JSON Pointer of the containing entities (for example: /definitions/Pet/properties/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending value or the legal alternatives.
	// Params carries structured parameters (e.g., {"name":"Pet","type":"object"})
	// for i18n and tooling.
	Params map[string]any
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_name at /tags/pet: duplicate name ("Pet")
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue carries the code behind target, so callers
// can write errors.Is(err, swaggerdsl.ErrDuplicateName).
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if s, ok := sentinelByCode[it.Code]; ok && s == target {
			return true
		}
	}
	return false
}

// Rebase prefixes every issue path with base. Child builders report paths
// relative to themselves; the parent rebases them under its own position.
func (iss Issues) Rebase(base PathRef) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, 0, len(iss))
	prefix := base.Pointer()
	for _, it := range iss {
		p := it.Path
		switch {
		case prefix == "/":
		case p == "" || p == "/":
			p = prefix
		case p[0] == '/':
			p = prefix + p
		default:
			p = prefix + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
