package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds a single websocket write.
const writeWait = 10 * time.Second

// previewMessage is pushed to every connected client whenever the document
// changes.
type previewMessage struct {
	HTML    string `json:"html"`
	Text    string `json:"text"`
	Version uint64 `json:"version"`
}

// hub tracks connected preview clients.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// broadcast sends msg to every client. Clients that fail to accept the
// write are dropped: a stuck browser tab must not stall editing.
func (h *hub) broadcast(msg previewMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// closeAll disconnects every client.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// upgrader accepts same-host browser connections. The server binds to the
// editor page it serves itself, so cross-origin requests are rejected by
// the default origin check.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade: %v", err)
		return
	}

	s.hub.add(conn)
	s.logger.Printf("preview client connected: %s", r.RemoteAddr)

	// Send the current preview immediately so a fresh tab is not blank
	// until the next edit.
	fragment, err := s.renderFragment(r.Context(), s.session.Text())
	if err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(previewMessage{
			HTML:    fragment,
			Text:    s.session.Text(),
			Version: s.session.Version(),
		})
	}

	// Reader loop: the editor never expects client messages, but reading
	// is required to observe close frames and connection drops.
	go func() {
		defer func() {
			s.hub.remove(conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
