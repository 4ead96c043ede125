package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds how long a single push to a subscriber may block.
const writeWait = 1 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub fans a Snapshot out to every subscribed /stream connection after each
// step_simulation call. A subscriber that can't keep up misses updates
// rather than being allowed to block the broadcaster; it stays subscribed.
type hub struct {
	mu   sync.Mutex
	subs map[*websocket.Conn]chan Snapshot
}

func newHub() *hub {
	return &hub{subs: make(map[*websocket.Conn]chan Snapshot)}
}

func (h *hub) add(conn *websocket.Conn) chan Snapshot {
	ch := make(chan Snapshot, 1)
	h.mu.Lock()
	h.subs[conn] = ch
	h.mu.Unlock()
	return ch
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if ch, ok := h.subs[conn]; ok {
		close(ch)
		delete(h.subs, conn)
	}
	h.mu.Unlock()
}

func (h *hub) broadcast(snap Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.subs {
		select {
		case ch <- snap:
		default:
			// subscriber is behind; drop this update rather than block the step.
			_ = conn
		}
	}
}

// handleStream upgrades to a WebSocket and pushes a Snapshot after every
// subsequent step_simulation call, until the client disconnects.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("stream upgrade:", err)
		return
	}
	defer conn.Close()

	ch := s.hub.add(conn)
	defer s.hub.remove(conn)

	for snap := range ch {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
}
