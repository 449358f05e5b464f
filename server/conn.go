package server

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"snake-arena/protocol"
)

// Conn manages a single renderer session. Incoming steering intents are only
// stored here; the hub applies them inside its tick, so all match mutation
// stays on one goroutine.
type Conn struct {
	ID   string
	Name string

	ws      *websocket.Conn
	mu      sync.Mutex // protects input flags and ws writes
	dir     int
	hasDir  bool
	restart bool
	closed  bool
}

// NewConn wraps a websocket in a session with a fresh ID.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the websocket.
func (c *Conn) Send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// TakeDirection returns the latest unapplied steering intent, if any, and
// clears it. Within a tick the latest intent wins.
func (c *Conn) TakeDirection() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasDir {
		return 0, false
	}
	c.hasDir = false
	return c.dir, true
}

// TakeRestart reports and clears a pending restart request.
func (c *Conn) TakeRestart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.restart
	c.restart = false
	return r
}

func (c *Conn) setDirection(d int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dir = d
	c.hasDir = true
}

// Close marks the connection closed.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.ws.Close()
}

// ReadLoop handles incoming messages until the renderer disconnects.
// onJoin runs when a join message arrives, onDisconnect when the loop ends.
func (c *Conn) ReadLoop(onJoin func(*Conn, string), onDisconnect func(*Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg protocol.ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case protocol.MsgJoin:
			name := msg.Name
			if name == "" {
				name = "Player"
			}
			c.Name = name
			onJoin(c, name)

		case protocol.MsgInput:
			if msg.Direction >= protocol.DirUp && msg.Direction <= protocol.DirRight {
				c.setDirection(msg.Direction)
			}

		case protocol.MsgRestart:
			c.mu.Lock()
			c.restart = true
			c.mu.Unlock()
		}
	}
}

// ConnManager tracks all active renderer sessions.
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty manager.
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection.
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection.
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections.
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections.
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}
