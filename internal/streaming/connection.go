package streaming

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 16 * 1024
)

// ClientMessage is the client-to-server WebSocket envelope. The minimal
// implementation defines no variants; any frame that does parse as a
// ClientMessage is forwarded to the registry's outbound channel, but parse
// failures are logged and ignored rather than closing the connection.
type ClientMessage struct {
	Type string `json:"type"`
}

// Connection accepts one established WebSocket upgrade and drives it for
// its lifetime. It runs two cooperating half-duplex tasks -- incoming
// (reads frames, forwards parsed client messages) and outgoing (relays bus
// events as text frames) -- and ensures neither outlives the other.
type Connection struct {
	conn     *websocket.Conn
	sub      *Subscription
	outbound chan<- ClientMessage
	peerAddr string
	logger   *slog.Logger
}

// NewConnection builds a connection handler for an already-upgraded socket.
func NewConnection(conn *websocket.Conn, sub *Subscription, outbound chan<- ClientMessage, peerAddr string) *Connection {
	return &Connection{
		conn:     conn,
		sub:      sub,
		outbound: outbound,
		peerAddr: peerAddr,
		logger:   slog.Default().With("component", "ws-connection", "peer", peerAddr),
	}
}

// Run drives the connection until either task terminates, then waits for
// the other to finish before returning. It blocks the calling goroutine for
// the lifetime of the connection.
func (c *Connection) Run() {
	closeSignal := make(chan struct{})
	var once sync.Once
	signalClose := func() { once.Do(func() { close(closeSignal) }) }

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer signalClose()
		c.incoming()
	}()

	go func() {
		defer wg.Done()
		c.outgoing(closeSignal)
		// Closing the socket fails incoming's pending read, so incoming also
		// ends when outgoing stops first.
		c.conn.Close()
	}()

	wg.Wait()
	c.conn.Close()
}

// incoming reads frames until the stream ends or the connection is closed
// from the outside. It never closes c.conn itself; outgoing owns teardown.
func (c *Connection) incoming() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("unexpected close", "error", err)
			}
			return
		}

		switch msgType {
		case websocket.TextMessage:
			var msg ClientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				c.logger.Debug("failed to parse client message", "error", err)
				continue
			}
			select {
			case c.outbound <- msg:
			default:
				c.logger.Debug("outbound channel full, dropping client message")
			}
		default:
			// Binary, pong, and close frames are logged and ignored; ping
			// frames are answered automatically by gorilla/websocket before
			// ReadMessage ever returns them here.
			c.logger.Debug("ignoring non-text frame", "type", msgType)
		}
	}
}

// outgoing relays bus events as text frames until the close signal fires or
// a write fails. On close, it flushes nothing further and returns.
func (c *Connection) outgoing(closeSignal <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-c.sub.Events():
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				c.logger.Error("marshal event", "error", err)
				continue
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-closeSignal:
			return
		}
	}
}
