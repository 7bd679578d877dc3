package spectate

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lixenwraith/planet-survivor/logger"
)

// ErrHubStopped is returned when publishing after the hub has shut down
var ErrHubStopped = errors.New("spectator hub stopped")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps the set of spectators and broadcasts snapshots to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
	log        *logger.Logger

	seq     atomic.Uint64
	dropped atomic.Uint64
}

// NewHub creates a hub; Run must be started before clients connect
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		h.mu.Lock()
		for client := range h.clients {
			close(client.send)
			delete(h.clients, client)
		}
		h.mu.Unlock()
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("spectator hub shutting down")
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Info("spectator connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Info("spectator disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Too slow to keep up
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many snapshots were skipped because the hub was busy
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Publish stamps and queues a snapshot for broadcast without blocking
func (h *Hub) Publish(s Snapshot) error {
	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	s.Seq = h.seq.Add(1)
	if s.SentAt == 0 {
		s.SentAt = time.Now().UnixMilli()
	}
	data, err := s.Encode()
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
	default:
		h.dropped.Add(1)
	}
	return nil
}

func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ServeWS upgrades the request and attaches a spectator
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("spectator upgrade failed: %v", err)
		return
	}
	client := newClient(h, conn)
	if !h.join(client) {
		conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}

// Handler returns the spectator HTTP routes
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("planet survivor spectator feed: connect a websocket to /ws\n"))
	})
	return mux
}

// Serve runs the hub and an HTTP server on addr until ctx is cancelled
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return h.serveListener(ctx, ln)
}

func (h *Hub) serveListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	h.log.Infof("spectator feed listening on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// SnapshotSource returns the current snapshot, ok is false when there is nothing to send
type SnapshotSource func() (Snapshot, bool)

// RunPublisher sends a snapshot from source every interval until ctx is cancelled
func RunPublisher(ctx context.Context, h *Hub, interval time.Duration, source SnapshotSource) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if h.ClientCount() == 0 {
				continue
			}
			s, ok := source()
			if !ok {
				continue
			}
			if err := h.Publish(s); err != nil {
				return
			}
		}
	}
}
