package ws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20 // drawings are the largest inbound message
)

// conn is the minimal connection surface the client needs. It is
// satisfied by *websocket.Conn; tests substitute their own.
type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
	Close() error
}

// Client is one WebSocket connection. It starts unbound; handling
// CREATE_ROOM, JOIN_ROOM or RECONNECT binds it to a room and player,
// after which room events are routed to it through the hub.
type Client struct {
	conn        conn
	send        chan []byte
	logger      *slog.Logger
	connectedAt time.Time
}

func newClient(c conn, logger *slog.Logger) *Client {
	return &Client{
		conn:        c,
		send:        make(chan []byte, 64),
		logger:      logger,
		connectedAt: time.Now(),
	}
}

// readPump reads inbound frames and hands them to the dispatcher
// until the connection drops. Runs on the handler's goroutine.
func (c *Client) readPump(dispatch func([]byte)) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", slog.String("error", err.Error()))
			}
			return
		}
		dispatch(msg)
	}
}

// writePump drains the send channel onto the connection and keeps the
// connection alive with pings. Runs on its own goroutine; it owns all
// writes to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
