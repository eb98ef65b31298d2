// Package server serves rendered session logs over HTTP(S). It reads
// the log files as opaque text; the converter is never invoked here.
package server

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zeveck/claude-session-logger/internal/debug"
	"github.com/zeveck/claude-session-logger/internal/logindex"
)

// Server serves a directory of rendered session logs.
type Server struct {
	logDir string
	router *gin.Engine
}

// New creates a log server over logDir.
func New(logDir string) *Server {
	if !debug.Enabled {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if debug.Enabled {
		router.Use(gin.Logger())
	}

	tmpl := template.Must(template.New("index").Parse(indexTemplate))
	template.Must(tmpl.New("viewer").Parse(viewerTemplate))
	router.SetHTMLTemplate(tmpl)

	s := &Server{logDir: logDir, router: router}

	router.GET("/", s.handleIndex)
	router.GET("/:name", s.handleLog)

	return s
}

// Handler exposes the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves plain HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// RunTLS serves HTTPS on addr with the given certificate pair.
func (s *Server) RunTLS(addr, certFile, keyFile string) error {
	return s.router.RunTLS(addr, certFile, keyFile)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.HTML(http.StatusOK, "index", gin.H{
		"Entries": logindex.List(s.logDir),
	})
}

// handleLog serves /{name}.md as raw markdown and /{name} as the HTML
// viewer shell around the same content.
func (s *Server) handleLog(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	c.Header("Access-Control-Allow-Origin", "*")

	if raw := strings.HasSuffix(name, ".md"); raw {
		content, err := s.readLog(strings.TrimSuffix(name, ".md"))
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
		return
	}

	content, err := s.readLog(name)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.HTML(http.StatusOK, "viewer", gin.H{
		"Title":   name,
		"Content": string(content),
	})
}

func (s *Server) readLog(name string) ([]byte, error) {
	if name == "" || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("invalid log name")
	}
	return os.ReadFile(filepath.Join(s.logDir, name+".md"))
}
