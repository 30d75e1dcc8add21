// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package api

import (
	"net/http"
	"path"
	"strings"

	"github.com/tomtom215/inflection/internal/logging"
)

// fallbackIndexHTML is served at / when the frontend build is missing.
const fallbackIndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Inflection</title>
</head>
<body>
<h1>Backend running</h1>
<p>index.html was not found in the static directory. The API is available under <code>/api/</code>.</p>
</body>
</html>
`

// Router handles HTTP routing
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a new router. staticDir holds the built frontend.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, staticDir string) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		staticDir:     staticDir,
	}
}

// serveStaticOrIndex serves static files, index.html for / and the fallback
// page when index.html is missing.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	p := path.Clean("/" + r.URL.Path)

	switch {
	case strings.HasSuffix(p, ".js") || strings.HasSuffix(p, ".css"):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(p, ".png") || strings.HasSuffix(p, ".svg") || strings.HasSuffix(p, ".jpg") || strings.HasSuffix(p, ".webp") || strings.HasSuffix(p, ".ico"):
		w.Header().Set("Cache-Control", "public, max-age=604800")
	case p == "/" || p == "/index.html":
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if p != "/" && p != "/index.html" && router.fileExists(p) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	if p != "/" && p != "/index.html" {
		http.NotFound(w, r)
		return
	}

	if router.fileExists("/index.html") {
		http.ServeFile(w, r, path.Join(router.staticDir, "index.html"))
		return
	}

	logging.Ctx(r.Context()).Debug().Str("static_dir", router.staticDir).Msg("index.html not found, serving fallback page")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fallbackIndexHTML))
}

// fileExists reports whether name is a regular file inside the static dir.
func (router *Router) fileExists(name string) bool {
	if router.staticDir == "" {
		return false
	}

	f, err := http.Dir(router.staticDir).Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
