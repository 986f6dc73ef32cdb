// Package swaggerui serves a generated Swagger document next to a packaged
// Swagger UI landing page.
package swaggerui

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

//go:embed assets/*
var embeddedAssets embed.FS

// DefaultSpecURL is the document URL baked into the packaged index.html.
const DefaultSpecURL = "https://petstore.swagger.io/v2/swagger.json"

const hideTopbarStyle = `<style>.swagger-ui .topbar { display: none }</style>`

// Asset is one response body with its MIME type.
type Asset struct {
	MIMEType string
	Data     []byte
}

// Responder answers relative asset paths. It holds only immutable data and
// is safe for concurrent use.
type Responder struct {
	cfg    Config
	spec   []byte
	assets fs.FS
	log    *slog.Logger
}

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets the logger used for misses; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

// WithAssets replaces the packaged asset set.
func WithAssets(assets fs.FS) Option {
	return func(r *Responder) {
		if assets != nil {
			r.assets = assets
		}
	}
}

// EmbeddedAssets exposes the packaged UI files.
func EmbeddedAssets() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// New returns a responder serving spec (the serialized document) under
// cfg.SpecFileName.
func New(cfg Config, spec []byte, opts ...Option) *Responder {
	r := &Responder{
		cfg:    cfg.withDefaults(),
		spec:   append([]byte(nil), spec...),
		assets: EmbeddedAssets(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the asset for relPath.
func (r *Responder) Get(relPath string) (Asset, bool) {
	switch relPath {
	case r.cfg.SpecFileName:
		return Asset{MIMEType: "application/x-yaml", Data: append([]byte(nil), r.spec...)}, true
	case "index.html":
		page, err := fs.ReadFile(r.assets, "index.html")
		if err != nil {
			return Asset{}, false
		}
		return Asset{MIMEType: mimeHTML, Data: []byte(r.landingPage(string(page)))}, true
	}
	if !fs.ValidPath(relPath) {
		return Asset{}, false
	}
	data, err := fs.ReadFile(r.assets, relPath)
	if err != nil {
		return Asset{}, false
	}
	return Asset{MIMEType: MIMEType(relPath), Data: data}, true
}

func (r *Responder) landingPage(page string) string {
	page = strings.Replace(page, DefaultSpecURL, r.cfg.SpecURL, 1)
	if r.cfg.HideTopbar {
		page = strings.Replace(page, "</head>", hideTopbarStyle+"\n</head>", 1)
	}
	return page
}

// ServeHTTP serves Get over HTTP. The root path maps to index.html.
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	rel := strings.TrimPrefix(path.Clean("/"+req.URL.Path), "/")
	if rel == "" {
		rel = "index.html"
	}
	asset, ok := r.Get(rel)
	if !ok {
		r.log.Debug("swaggerui: asset not found", "path", rel)
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", asset.MIMEType)
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(asset.Data); err != nil {
		r.log.Warn("swaggerui: write response", "path", rel, "error", err)
	}
}
