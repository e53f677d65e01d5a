package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/site"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// reloadMessage is sent on connect and after every successful reload.
type reloadMessage struct {
	Type     string `json:"type"`
	Revision string `json:"revision"`
}

// hub tracks live reload connections so Shutdown can close them.
type hub struct {
	store  *site.Store
	logger *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub(store *site.Store, logger *zap.Logger) *hub {
	return &hub{
		store:  store,
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// clients returns the number of connected clients.
func (h *hub) clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(h.conns, conn)
	}
}

// serveWS upgrades the request and pushes the current revision, then every
// new one, until the client goes away.
func (h *hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("live reload upgrade failed", zap.Error(err))
		return
	}
	h.add(conn)

	revisions, cancel := h.store.Subscribe()
	defer func() {
		cancel()
		h.remove(conn)
		conn.Close()
	}()

	// The client only listens; reading detects when it disconnects.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("live reload read", zap.Error(err))
				}
				return
			}
		}
	}()

	if err := h.send(conn, h.store.Revision()); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-gone:
			return
		case rev, ok := <-revisions:
			if !ok {
				return
			}
			if err := h.send(conn, rev); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *hub) send(conn *websocket.Conn, revision string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(reloadMessage{Type: "reload", Revision: revision})
}
