package relay

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// State is the lifecycle state of a relay connection.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type frame struct {
	messageType int
	data        []byte
}

// Client is one live websocket connection. Only the hub closes send.
type Client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	send  chan frame
	state atomic.Int32
}

func newClient(id string, hub *Hub, conn *websocket.Conn) *Client {
	c := &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan frame, hub.opts.SendBuffer),
	}
	c.state.Store(int32(StateConnecting))
	return c
}

// State returns the current lifecycle state.
func (c *Client) State() State { return State(c.state.Load()) }

// readPump reads frames until the peer goes away or a read fails.
// Bad payloads never end the loop.
func (c *Client) readPump() {
	opts := c.hub.opts
	c.conn.SetReadLimit(opts.MaxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(opts.PongWait)); err != nil {
		c.hub.log.Warnw("failed to set initial read deadline", "conn", c.id, "error", err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(opts.PongWait))
	})

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.hub.log.Warnw("relay read failed", "conn", c.id, "error", err)
			}
			return
		}
		c.hub.handleFrame(c, frame{messageType: messageType, data: data})
	}
}

// writePump is the only writer of the connection. It exits when the hub
// closes send or a write fails.
func (c *Client) writePump() {
	opts := c.hub.opts
	ticker := time.NewTicker(opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(f.messageType, f.data); err != nil {
				c.hub.log.Debugw("relay write failed", "conn", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.log.Debugw("relay ping failed", "conn", c.id, "error", err)
				return
			}
		}
	}
}
