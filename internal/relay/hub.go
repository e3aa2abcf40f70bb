// Package relay fans JSON frames from one websocket client out to every
// other connected client.
package relay

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/sbilibin2017/cultureschool-backend/internal/id"
	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/metrics"
)

// Options tunes connection handling.
type Options struct {
	AllowedOrigins []string      // Empty allows any origin
	SendBuffer     int           // Outbound frames queued per peer before dropping
	MaxMessageSize int64         // Largest accepted inbound frame in bytes
	WriteWait      time.Duration // Deadline for a single write
	PongWait       time.Duration // Peer must answer pings within this window
	PingPeriod     time.Duration // Must be shorter than PongWait
}

// DefaultOptions returns the settings used in production.
func DefaultOptions() Options {
	return Options{
		SendBuffer:     64,
		MaxMessageSize: 64 << 10,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     54 * time.Second,
	}
}

// Hub owns the set of open connections. It is created at startup and torn
// down with Shutdown.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	closed   bool
	wg       sync.WaitGroup
	opts     Options
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

// NewHub creates an empty hub.
func NewHub(opts Options) *Hub {
	def := DefaultOptions()
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = def.SendBuffer
	}
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = def.MaxMessageSize
	}
	if opts.WriteWait <= 0 {
		opts.WriteWait = def.WriteWait
	}
	if opts.PongWait <= 0 {
		opts.PongWait = def.PongWait
	}
	if opts.PingPeriod <= 0 || opts.PingPeriod >= opts.PongWait {
		opts.PingPeriod = opts.PongWait * 9 / 10
	}

	h := &Hub{
		clients: make(map[*Client]struct{}),
		opts:    opts,
		log:     logger.Named("relay"),
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.opts.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	connID, err := id.Generate("conn")
	if err != nil {
		h.log.Errorw("failed to generate connection id", "error", err)
		conn.Close()
		return
	}
	c := newClient(connID, h, conn)

	go c.writePump()

	if !h.register(c) {
		h.log.Infow("relay shutting down, rejecting connection", "conn", c.id)
		return
	}
	defer h.wg.Done()
	h.log.Infow("relay client connected", "conn", c.id, "remote", r.RemoteAddr)

	c.readPump()

	h.unregister(c)
	conn.Close()
	h.log.Infow("relay client disconnected", "conn", c.id)
}

// register adds c to the broadcast set. The client's writer must already be
// running so that it never receives frames it cannot flush.
func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(c.send)
		c.state.Store(int32(StateClosed))
		return false
	}
	h.wg.Add(1)
	h.clients[c] = struct{}{}
	c.state.Store(int32(StateOpen))
	metrics.RelayConnected()
	return true
}

// unregister removes c and closes its outbound queue. Safe to call twice.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	c.state.Store(int32(StateClosed))
	metrics.RelayDisconnected()
}

func (h *Hub) handleFrame(sender *Client, f frame) {
	if !gjson.ValidBytes(f.data) {
		metrics.RelayFrame("malformed")
		h.log.Warnw("discarding malformed relay frame", "conn", sender.id, "size", len(f.data))
		return
	}
	metrics.RelayFrame("broadcast")
	h.log.Debugw("relay frame", "conn", sender.id, "type", gjson.GetBytes(f.data, "type").String())
	h.broadcast(sender, f)
}

// broadcast queues f for every open client except sender. Sends never block:
// a peer whose queue is full misses the frame.
func (h *Hub) broadcast(sender *Client, f frame) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.clients {
		if c == sender {
			continue
		}
		select {
		case c.send <- f:
			delivered++
		default:
			metrics.RelayDropped()
			h.log.Debugw("relay peer queue full, dropping frame", "conn", c.id)
		}
	}
	return delivered
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown closes every connection and waits for their handlers to return
// or ctx to expire. New connections are refused afterwards.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.state.Store(int32(StateClosed))
		metrics.RelayDisconnected()
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.log.Info("relay hub stopped")
		return nil
	case <-ctx.Done():
		h.log.Warn("relay hub shutdown timed out")
		return ctx.Err()
	}
}
