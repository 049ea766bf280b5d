// Package httpserver serves the browser editor: the page shell, the
// formatting API, and a websocket pushing re-rendered preview HTML.
package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	mdedit "github.com/Birphon/markdown-editor"
)

// renderTimeout bounds a single preview render triggered by an edit.
const renderTimeout = 5 * time.Second

// Server owns one editing session and its preview pipeline.
// The session model matches the editor: a single in-memory document per
// server, no persistence.
type Server struct {
	session *mdedit.Session
	service *mdedit.Service
	hub     *hub
	logger  *log.Logger

	httpSrv *http.Server
}

// New creates a Server around the given preview service and initial
// document text. logger may be nil to disable request logging.
func New(addr string, service *mdedit.Service, initialText string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Server{
		session: mdedit.NewSession(initialText),
		service: service,
		hub:     newHub(),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/doc", s.handleGetDoc)
	mux.HandleFunc("PUT /api/doc", s.handlePutDoc)
	mux.HandleFunc("POST /api/apply", s.handleApply)
	mux.HandleFunc("GET /api/preview", s.handlePreview)
	mux.HandleFunc("GET /ws", s.handleWS)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe blocks serving the editor until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Printf("editor listening on %s", s.httpSrv.Addr)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server and disconnects preview clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	return s.httpSrv.Shutdown(ctx)
}

// renderFragment renders the current document text for the preview surface.
// An empty document renders to an empty fragment rather than an error: a
// blank editor is not a failure.
func (s *Server) renderFragment(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()
	return s.service.Render(ctx, text)
}

// broadcastPreview renders the current document and pushes it to all
// connected preview clients. Render failures are logged, not fatal: the
// previous preview simply stays on screen.
func (s *Server) broadcastPreview() {
	text := s.session.Text()
	fragment, err := s.renderFragment(context.Background(), text)
	if err != nil {
		s.logger.Printf("preview render: %v", err)
		return
	}

	s.hub.broadcast(previewMessage{
		HTML:    fragment,
		Text:    text,
		Version: s.session.Version(),
	})
}
