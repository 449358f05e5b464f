package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"snake-arena/arena"
	"snake-arena/protocol"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Renderers connect from anywhere; the match carries no secrets.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Hub owns the match and the fixed-tick loop driving it. The ticker
// goroutine is the only writer to match state; renderer input arrives via
// the Conn snapshots and is applied at the top of each tick.
type Hub struct {
	cfg   arena.Config
	conns *ConnManager

	mu           sync.Mutex // protects match and controllerID
	match        *arena.Match
	controllerID string
	overSent     bool
}

// NewHub creates a hub with a fresh match.
func NewHub(cfg arena.Config) *Hub {
	return &Hub{
		cfg:   cfg,
		conns: NewConnManager(),
		match: arena.NewMatch(cfg, nil),
	}
}

// Run drives the match at the configured tick interval. Blocks until the
// process exits.
func (h *Hub) Run() {
	ticker := time.NewTicker(h.cfg.TickInterval)
	defer ticker.Stop()
	log.Printf("match loop started, tick interval %v", h.cfg.TickInterval)

	for range ticker.C {
		h.tick()
	}
}

// tick applies pending renderer input, advances the simulation one step, and
// broadcasts the resulting state.
func (h *Hub) tick() {
	conns := h.conns.Snapshot()

	h.mu.Lock()

	// Restart requests only apply once the match is terminal.
	for _, c := range conns {
		if c.TakeRestart() && h.match.IsOver() {
			log.Printf("match restarted by %s", c.ID)
			h.match = arena.NewMatch(h.cfg, nil)
			h.overSent = false
		}
	}

	if h.match.IsOver() {
		h.mu.Unlock()
		return
	}

	// Only the controlling connection steers the player snake.
	for _, c := range conns {
		if c.ID != h.controllerID {
			continue
		}
		if d, ok := c.TakeDirection(); ok {
			h.match.SetPlayerDirection(wireDirection(d))
		}
	}

	report := h.match.Tick()
	for _, ev := range report.Eaten {
		log.Printf("snake %d ate %s at (%d,%d)", ev.Slot, ev.FoodID, ev.Pos.X, ev.Pos.Y)
	}
	for _, ev := range report.Combat {
		log.Printf("combat (%s): snake %d killed snake %d, bonus %d",
			ev.Kind, ev.SurvivorSlot, ev.VictimSlot, ev.Bonus)
	}

	state := h.stateFrame()
	var over *protocol.OverMsg
	if report.Over && !h.overSent {
		h.overSent = true
		over = h.overFrame()
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.Send(state); err != nil {
			log.Printf("send error to %s: %v", c.ID, err)
		}
		if over != nil {
			_ = c.Send(*over)
		}
	}
}

// stateFrame builds the per-tick state message. Caller must hold h.mu.
func (h *Hub) stateFrame() protocol.StateMsg {
	m := h.match

	snakes := make([]protocol.SnakeDTO, 0, len(m.Snakes()))
	for _, s := range m.Snakes() {
		body := make([][2]int, len(s.Body))
		for i, p := range s.Body {
			body[i] = [2]int{p.X, p.Y}
		}
		snakes = append(snakes, protocol.SnakeDTO{
			Slot:   s.Slot,
			Body:   body,
			Alive:  boolToInt(s.Alive),
			Length: s.TargetLength,
			AI:     boolToInt(s.IsAI),
		})
	}

	items := m.FoodItems()
	food := make([]protocol.FoodDTO, len(items))
	for i, f := range items {
		food[i] = protocol.FoodDTO{ID: f.ID, X: f.Pos.X, Y: f.Pos.Y}
	}

	return protocol.StateMsg{
		Type:        protocol.MsgState,
		Tick:        int(m.Elapsed() / h.cfg.TickInterval),
		RemainingMS: m.Remaining().Milliseconds(),
		Snakes:      snakes,
		Food:        food,
	}
}

// overFrame builds the terminal message. Caller must hold h.mu.
func (h *Hub) overFrame() *protocol.OverMsg {
	m := h.match
	winnerSlot := -1
	if w := m.Winner(); w != nil {
		winnerSlot = w.Slot
	}
	standings := make([]protocol.StandingDTO, 0, len(m.Snakes()))
	for _, st := range m.Standings() {
		standings = append(standings, protocol.StandingDTO{
			Slot:   st.Slot,
			Length: st.Length,
			Alive:  boolToInt(st.Alive),
		})
	}
	return &protocol.OverMsg{
		Type:       protocol.MsgOver,
		WinnerSlot: winnerSlot,
		Standings:  standings,
	}
}

// HandleWS upgrades a renderer connection and services it until disconnect.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	conn := NewConn(ws)
	h.conns.Add(conn)
	log.Printf("renderer connected: %s", conn.ID)

	onJoin := func(c *Conn, name string) {
		h.mu.Lock()
		controller := 0
		if h.controllerID == "" {
			// First joiner steers the player snake; later joiners spectate.
			h.controllerID = c.ID
			controller = 1
			log.Printf("%s (%s) controls the player snake", name, c.ID)
		}
		h.mu.Unlock()

		_ = c.Send(protocol.WelcomeMsg{
			Type:       protocol.MsgWelcome,
			ID:         c.ID,
			Grid:       [2]int{h.cfg.GridWidth, h.cfg.GridHeight},
			Controller: controller,
		})
	}

	onDisconnect := func(c *Conn) {
		h.conns.Remove(c.ID)
		h.mu.Lock()
		if h.controllerID == c.ID {
			h.controllerID = ""
		}
		h.mu.Unlock()
		log.Printf("renderer disconnected: %s", c.ID)
	}

	conn.ReadLoop(onJoin, onDisconnect)
}

// wireDirection maps a protocol direction value onto the simulation enum.
func wireDirection(d int) arena.Direction {
	switch d {
	case protocol.DirUp:
		return arena.Up
	case protocol.DirDown:
		return arena.Down
	case protocol.DirLeft:
		return arena.Left
	default:
		return arena.Right
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
