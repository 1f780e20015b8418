// Package web serves the embedded single-page menu parser UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed dist/*
var staticFiles embed.FS

// GetFileSystem returns the embedded filesystem with the dist folder as root.
func GetFileSystem() (fs.FS, error) {
	return fs.Sub(staticFiles, "dist")
}

// RegisterStaticRoutes serves the UI for every GET/HEAD request that no API
// route matched. Unknown paths outside /api fall back to index.html.
func RegisterStaticRoutes(r *gin.Engine) error {
	staticFS, err := GetFileSystem()
	if err != nil {
		return err
	}

	fileServer := http.FileServer(http.FS(staticFS))

	r.NoRoute(func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodGet && method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requestPath := path.Clean(c.Request.URL.Path)
		if strings.HasPrefix(requestPath, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		name := strings.TrimPrefix(requestPath, "/")
		if name == "" || !exists(staticFS, name) {
			serveIndexHTML(c, staticFS)
			return
		}

		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	return nil
}

func exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// serveIndexHTML serves the main index.html for SPA routing
func serveIndexHTML(c *gin.Context, staticFS fs.FS) {
	content, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "index.html not found"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", content)
}
