package swaggeryaml

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const indentUnit = "  "

// writer accumulates YAML lines. Depth is counted in indent units.
type writer struct {
	buf []byte
}

func (w *writer) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		w.buf = append(w.buf, indentUnit...)
	}
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '\n')
}

// plain writes key: value with value as-is.
func (w *writer) plain(depth int, key, value string) {
	w.line(depth, key+": "+value)
}

// text writes a free-text value: double-quoted when it fits on one line,
// a block literal otherwise. Empty values are skipped.
func (w *writer) text(depth int, key, value string) {
	if value == "" {
		return
	}
	if isMultiline(value) {
		w.line(depth, key+": "+blockHeader(value))
		w.block(depth+1, value)
		return
	}
	w.line(depth, key+": "+quote(value))
}

// value writes an arbitrary example/enum value.
func (w *writer) value(depth int, key string, v any) {
	if s, ok := v.(string); ok {
		if isMultiline(s) {
			w.line(depth, key+": "+blockHeader(s))
			w.block(depth+1, s)
			return
		}
		w.line(depth, key+": "+quote(s))
		return
	}
	w.line(depth, key+": "+encodeJSON(v))
}

// texts writes a list of free-text values. Empty lists are skipped.
func (w *writer) texts(depth int, key string, values []string) {
	if len(values) == 0 {
		return
	}
	w.line(depth, key+":")
	for _, v := range values {
		w.itemValue(depth+1, v)
	}
}

// values writes a list of arbitrary values.
func (w *writer) values(depth int, key string, values []any) {
	if len(values) == 0 {
		return
	}
	w.line(depth, key+":")
	for _, v := range values {
		w.itemValue(depth+1, v)
	}
}

func (w *writer) itemValue(depth int, v any) {
	s, ok := v.(string)
	switch {
	case !ok:
		w.line(depth, "- "+encodeJSON(v))
	case isMultiline(s):
		w.line(depth, "- "+blockHeader(s))
		w.block(depth+1, s)
	default:
		w.line(depth, "- "+quote(s))
	}
}

// item writes one mapping entry of a sequence: fn writes the mapping one
// level deeper and the first line's last indent unit becomes "- ".
func (w *writer) item(depth int, fn func(depth int)) {
	start := len(w.buf)
	fn(depth + 1)
	if len(w.buf) == start {
		w.line(depth, "- {}")
		return
	}
	at := start + depth*len(indentUnit)
	w.buf[at] = '-'
	w.buf[at+1] = ' '
}

func (w *writer) block(depth int, s string) {
	for _, ln := range blockLines(s) {
		if ln == "" {
			w.buf = append(w.buf, '\n')
			continue
		}
		w.line(depth, ln)
	}
}

// blockLines splits s on any line break style, dropping one trailing break.
func blockLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// blockHeader returns the block literal indicator for s. A first content
// line starting with a space needs an explicit indentation indicator, or a
// parser would take that space as the block's indentation.
func blockHeader(s string) string {
	for _, ln := range blockLines(s) {
		if ln == "" {
			continue
		}
		if ln[0] == ' ' {
			return "|" + strconv.Itoa(len(indentUnit))
		}
		break
	}
	return "|"
}

func isMultiline(s string) bool { return strings.ContainsAny(s, "\n\r") }

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a double-quoted scalar.
func quote(s string) string { return `"` + quoteReplacer.Replace(s) + `"` }

// singleQuote renders s as a single-quoted scalar.
func singleQuote(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" }

// encodeJSON renders numbers, booleans, null and composite values in JSON
// form, which YAML reads as flow scalars and collections.
func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// key renders a mapping key: plain when YAML reads it back verbatim,
// double-quoted otherwise.
func key(s string) string {
	if plainSafe(s) {
		return s
	}
	return quote(s)
}

func plainSafe(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}
	if strings.ContainsAny(s[:1], "-?:,[]{}#&*!|>'\"%@`") {
		return false
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.HasSuffix(s, ":") || isMultiline(s) {
		return false
	}
	switch strings.ToLower(s) {
	case "null", "~", "true", "false", "yes", "no", "on", "off", "y", "n", ".inf", "-.inf", "+.inf", ".nan":
		return false
	}
	// numeric-looking keys would read back as numbers
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	return true
}
