package swaggerui

import (
	"path"
	"strings"
)

const (
	mimeHTML    = "text/html; charset=utf-8"
	mimeDefault = "application/octet-stream"
)

var mimeByExt = map[string]string{
	".html": mimeHTML,
	".htm":  mimeHTML,
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".map":  "application/json",
	".json": "application/json",
	".yaml": "application/x-yaml",
	".yml":  "application/x-yaml",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".txt":  "text/plain; charset=utf-8",
}

// MIMEType returns the content type for name by extension, falling back to
// application/octet-stream.
func MIMEType(name string) string {
	if t, ok := mimeByExt[strings.ToLower(path.Ext(name))]; ok {
		return t
	}
	return mimeDefault
}
