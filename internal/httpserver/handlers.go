package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	mdedit "github.com/Birphon/markdown-editor"
	"github.com/Birphon/markdown-editor/internal/assets"
)

// maxBodySize caps request bodies; documents are in-memory strings, not
// uploads.
const maxBodySize = 4 << 20

// docResponse is the document state returned by GET /api/doc and PUT /api/doc.
type docResponse struct {
	Text    string `json:"text"`
	Version uint64 `json:"version"`
}

// applyRequest is a toolbar action: a format identifier plus the selection
// byte offsets reported by the textarea.
type applyRequest struct {
	Format string `json:"format"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// applyResponse carries the new text and the caret position the UI must set
// after it has re-rendered the textarea with the new value.
type applyResponse struct {
	Text    string `json:"text"`
	Cursor  int    `json:"cursor"`
	Version uint64 `json:"version"`
}

// putDocRequest replaces the document text (typing sync).
type putDocRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, assets.EditorPage())
}

func (s *Server) handleGetDoc(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, docResponse{
		Text:    s.session.Text(),
		Version: s.session.Version(),
	})
}

func (s *Server) handlePutDoc(w http.ResponseWriter, r *http.Request) {
	var req putDocRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	version := s.session.SetText(req.Text)
	s.broadcastPreview()
	writeJSON(w, http.StatusOK, docResponse{Text: req.Text, Version: version})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	format, err := mdedit.ParseFormat(req.Format)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.session.Apply(format, mdedit.Selection{Start: req.Start, End: req.End})
	if err != nil {
		writeError(w, err)
		return
	}

	// The response hands the caret position to the UI, which repositions
	// only after rendering the new text; consume the scheduled value here.
	cursor := res.Cursor
	if pending, ok := s.session.TakePendingCursor(); ok {
		cursor = pending
	}

	s.broadcastPreview()
	writeJSON(w, http.StatusOK, applyResponse{
		Text:    res.Text,
		Cursor:  cursor,
		Version: s.session.Version(),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	fragment, err := s.renderFragment(r.Context(), s.session.Text())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, fragment)
}

// decodeJSON parses the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps library sentinel errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, mdedit.ErrUnknownFormat),
		errors.Is(err, mdedit.ErrInvalidSelection):
		status = http.StatusBadRequest
	case errors.Is(err, mdedit.ErrInputTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	http.Error(w, err.Error(), status)
}
