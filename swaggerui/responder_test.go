package swaggerui_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlowMo7/SwaggerDSL/swaggerui"
)

var spec = []byte("swagger: '2.0'\n")

func TestGet_SpecFile(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)

	asset, ok := r.Get("swagger.yaml")
	require.True(t, ok)
	assert.Equal(t, "application/x-yaml", asset.MIMEType)
	assert.Equal(t, spec, asset.Data)

	// the responder keeps its own copy
	asset.Data[0] = 'X'
	again, _ := r.Get("swagger.yaml")
	assert.Equal(t, spec, again.Data)
}

func TestGet_CustomSpecFileName(t *testing.T) {
	r := swaggerui.New(swaggerui.Config{SpecFileName: "api/v2.yaml"}, spec)

	_, ok := r.Get("swagger.yaml")
	assert.False(t, ok)
	asset, ok := r.Get("api/v2.yaml")
	require.True(t, ok)
	assert.Equal(t, spec, asset.Data)

	index, ok := r.Get("index.html")
	require.True(t, ok)
	assert.Contains(t, string(index.Data), `url: "./api/v2.yaml"`)
}

func TestGet_IndexSubstitutesURL(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)

	asset, ok := r.Get("index.html")
	require.True(t, ok)
	page := string(asset.Data)
	assert.Equal(t, "text/html; charset=utf-8", asset.MIMEType)
	assert.NotContains(t, page, swaggerui.DefaultSpecURL)
	assert.Contains(t, page, `url: "./swagger.yaml"`)
	assert.NotContains(t, page, ".topbar { display: none }")
}

func TestGet_IndexHidesTopbar(t *testing.T) {
	cfg := swaggerui.DefaultConfig()
	cfg.HideTopbar = true
	cfg.SpecURL = "/docs/openapi.yaml"
	r := swaggerui.New(cfg, spec)

	asset, ok := r.Get("index.html")
	require.True(t, ok)
	page := string(asset.Data)
	assert.Contains(t, page, `url: "/docs/openapi.yaml"`)
	style := strings.Index(page, ".topbar { display: none }")
	head := strings.Index(page, "</head>")
	require.GreaterOrEqual(t, style, 0)
	assert.Less(t, style, head)
	assert.Equal(t, 1, strings.Count(page, ".topbar { display: none }"))
}

func TestGet_PackagedAssets(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)

	css, ok := r.Get("swagger-ui.css")
	require.True(t, ok)
	assert.Equal(t, "text/css; charset=utf-8", css.MIMEType)
	assert.NotEmpty(t, css.Data)

	js, ok := r.Get("swagger-ui-bundle.js")
	require.True(t, ok)
	assert.Equal(t, "application/javascript", js.MIMEType)
}

func TestGet_Missing(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)

	for _, p := range []string{"nope.js", "../go.mod", "/index.html", "", "assets/index.html"} {
		_, ok := r.Get(p)
		assert.False(t, ok, "path %q", p)
	}
}

func TestGet_CustomAssetsAndMIMEFallback(t *testing.T) {
	assets := fstest.MapFS{
		"index.html":  {Data: []byte("<head>" + swaggerui.DefaultSpecURL + "</head>")},
		"logo.png":    {Data: []byte{0x89, 'P', 'N', 'G'}},
		"data.bin":    {Data: []byte{1, 2, 3}},
		"fonts/a.svg": {Data: []byte("<svg/>")},
	}
	r := swaggerui.New(swaggerui.DefaultConfig(), spec, swaggerui.WithAssets(assets))

	png, ok := r.Get("logo.png")
	require.True(t, ok)
	assert.Equal(t, "image/png", png.MIMEType)

	bin, ok := r.Get("data.bin")
	require.True(t, ok)
	assert.Equal(t, "application/octet-stream", bin.MIMEType)

	svg, ok := r.Get("fonts/a.svg")
	require.True(t, ok)
	assert.Equal(t, "image/svg+xml", svg.MIMEType)

	index, ok := r.Get("index.html")
	require.True(t, ok)
	assert.Equal(t, "<head>./swagger.yaml</head>", string(index.Data))
}

func TestMIMEType(t *testing.T) {
	cases := map[string]string{
		"a.HTML":      "text/html; charset=utf-8",
		"b.json":      "application/json",
		"c.yml":       "application/x-yaml",
		"d.ico":       "image/x-icon",
		"noextension": "application/octet-stream",
	}
	for name, want := range cases {
		assert.Equal(t, want, swaggerui.MIMEType(name), name)
	}
}

func TestServeHTTP(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)

	tests := []struct {
		method, target string
		status         int
		contentType    string
		body           string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8", ""},
		{http.MethodGet, "/swagger.yaml", http.StatusOK, "application/x-yaml", string(spec)},
		{http.MethodGet, "/missing.css", http.StatusNotFound, "", ""},
		{http.MethodGet, "/../swagger.yaml", http.StatusOK, "application/x-yaml", string(spec)},
		{http.MethodPost, "/swagger.yaml", http.StatusMethodNotAllowed, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
			assert.Equal(t, tc.status, rec.Code)
			if tc.contentType != "" {
				assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			}
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
			if tc.status == http.StatusMethodNotAllowed {
				assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
			}
		})
	}
}

func TestServeHTTP_Head(t *testing.T) {
	r := swaggerui.New(swaggerui.DefaultConfig(), spec)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/swagger.yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-yaml", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := swaggerui.LoadConfig([]byte("spec_file_name: openapi.yaml\nhide_topbar: true\n"))
	require.NoError(t, err)
	assert.Equal(t, swaggerui.Config{SpecFileName: "openapi.yaml", SpecURL: "./openapi.yaml", HideTopbar: true}, cfg)

	cfg, err = swaggerui.LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, swaggerui.DefaultConfig(), cfg)

	_, err = swaggerui.LoadConfig([]byte("spec_file: x.yaml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swaggerui: decode config")
}
