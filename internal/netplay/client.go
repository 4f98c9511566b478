// Package netplay is the transport adapter: a websocket client that carries
// fire-and-forget intents out and delivers authoritative snapshots and
// discrete server events in.
package netplay

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mannchess/internal/game"
)

// eventBuffer sizes the inbound channel. The UI drains it every update
// tick; if it ever falls behind, frames are dropped with a log line rather
// than stalling the read pump (a later snapshot supersedes anything lost).
const eventBuffer = 64

// Client is a connected session. Its Send methods implement game.Sender.
type Client struct {
	conn    *websocket.Conn
	session string
	events  chan Event

	writeMu   sync.Mutex
	closeOnce sync.Once
}

var _ game.Sender = (*Client)(nil)

// Dial connects to the server, announces the player, and starts the read
// pump. The session identity is generated client-side and echoed back by the
// server in snapshot selection attribution.
func Dial(serverURL, playerName string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:    conn,
		session: uuid.NewString(),
		events:  make(chan Event, eventBuffer),
	}
	c.send("join", joinPayload{Name: playerName, SessionID: c.session})
	go c.readPump()
	return c, nil
}

// Session returns the session identity announced at join.
func (c *Client) Session() string {
	return c.session
}

// Events returns the inbound event channel. It is closed after a
// DisconnectedEvent has been delivered.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Close tears the connection down. The read pump then reports a
// DisconnectedEvent and exits.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.conn.Close()
	})
}

// readPump translates inbound frames into events until the connection ends.
func (c *Client) readPump() {
	defer close(c.events)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.events <- DisconnectedEvent{Err: err}
			return
		}

		ev, err := decodeEvent(data)
		if err != nil {
			log.Printf("[NET] dropping malformed frame: %v", err)
			continue
		}
		if ev == nil {
			continue
		}

		select {
		case c.events <- ev:
		default:
			log.Printf("[NET] event buffer full, dropping %T", ev)
		}
	}
}

// send marshals and writes one frame. Failures are logged only: intents are
// fire-and-forget, and a dead connection surfaces through the read pump.
func (c *Client) send(msgType string, payload any) {
	data, err := encodeIntent(msgType, payload)
	if err != nil {
		log.Printf("[NET] encode %s: %v", msgType, err)
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("[NET] write %s: %v", msgType, err)
	}
}

// SendSelect emits a selection intent.
func (c *Client) SendSelect(row, col int) {
	c.send("select", selectPayload{Row: row, Col: col})
}

// SendDeselect emits a deselection intent.
func (c *Client) SendDeselect() {
	c.send("deselect", nil)
}

// SendMove emits a move intent.
func (c *Client) SendMove(fromRow, fromCol, toRow, toCol int) {
	c.send("move", movePayload{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol})
}

// SendRestart emits a restart intent.
func (c *Client) SendRestart() {
	c.send("restart", nil)
}
