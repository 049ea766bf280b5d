package mdedit

import "sync"

// Session holds the document being edited: the text, a version counter, and
// the caret position pending from the most recent formatting action.
//
// Each action is synchronous, but the HTTP boundary may touch a session from
// concurrent requests, so all state is guarded by a mutex.
type Session struct {
	mu      sync.Mutex
	text    string
	version uint64

	// Caret repositioning is deferred: the control must re-render with the
	// new text before its selection can be set. pendingCursor holds at most
	// one scheduled reposition; a newer action replaces it.
	pendingCursor  int
	pendingVersion uint64
	hasPending     bool
}

// NewSession creates a session around the initial document text.
func NewSession(text string) *Session {
	return &Session{text: text}
}

// Text returns the current document text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Version returns the current document version. The version increments on
// every text change and lets consumers detect stale previews.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// SetText replaces the document text wholesale (typing sync from the UI).
// Any pending caret reposition is dropped: it was computed against text the
// user has since changed.
func (s *Session) SetText(text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.version++
	s.hasPending = false
	return s.version
}

// Apply runs a formatting action against the current text and selection,
// commits the resulting text, and schedules the caret reposition for after
// the consumer has observed the new text.
func (s *Session) Apply(f Format, sel Selection) (TransformResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := Transform(s.text, sel, f)
	if err != nil {
		return TransformResult{}, err
	}

	s.text = res.Text
	s.version++
	s.pendingCursor = res.Cursor
	s.pendingVersion = s.version
	s.hasPending = true
	return res, nil
}

// TakePendingCursor returns the caret position scheduled by the last Apply,
// exactly once. It reports false when nothing is pending or when the
// document has changed since the reposition was scheduled.
//
// The caller must invoke it only after rendering the text version that
// scheduled it; that ordering is what ties caret placement to render
// completion rather than wall-clock delay.
func (s *Session) TakePendingCursor() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPending || s.pendingVersion != s.version {
		return 0, false
	}
	s.hasPending = false
	return s.pendingCursor, true
}
