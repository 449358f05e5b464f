package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"

	"snake-arena/protocol"
)

var (
	slotStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // player, green
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // AI, red
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // AI, blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // AI, yellow
	}
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

type model struct {
	ws   *websocket.Conn
	msgs chan tea.Msg

	gridW, gridH int
	controller   bool
	state        *protocol.StateMsg
	over         *protocol.OverMsg
	err          error
}

func initialModel(ws *websocket.Conn, msgs chan tea.Msg) model {
	return model{ws: ws, msgs: msgs}
}

func (m model) Init() tea.Cmd {
	return waitForServer(m.msgs)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "w":
			m.sendDirection(protocol.DirUp)
		case "down", "s":
			m.sendDirection(protocol.DirDown)
		case "left", "a":
			m.sendDirection(protocol.DirLeft)
		case "right", "d":
			m.sendDirection(protocol.DirRight)
		case "r":
			if m.over != nil {
				_ = m.ws.WriteJSON(protocol.ClientMessage{Type: protocol.MsgRestart})
				m.over = nil
			}
		}
		return m, nil

	case serverMsg:
		if msg.welcome != nil {
			m.gridW = msg.welcome.Grid[0]
			m.gridH = msg.welcome.Grid[1]
			m.controller = msg.welcome.Controller == 1
		}
		if msg.state != nil {
			m.state = msg.state
		}
		if msg.over != nil {
			m.over = msg.over
		}
		return m, waitForServer(m.msgs)

	case connClosedMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) sendDirection(d int) {
	if !m.controller {
		return
	}
	_ = m.ws.WriteJSON(protocol.ClientMessage{Type: protocol.MsgInput, Direction: d})
}

func (m model) View() string {
	if m.state == nil || m.gridW == 0 {
		return "waiting for arena server...\n"
	}

	type cell struct {
		ch    string
		style lipgloss.Style
	}
	cells := make(map[[2]int]cell)

	for _, f := range m.state.Food {
		cells[[2]int{f.X, f.Y}] = cell{"•", foodStyle}
	}
	for _, s := range m.state.Snakes {
		if s.Alive == 0 {
			continue
		}
		style := slotStyles[s.Slot%len(slotStyles)]
		for i, p := range s.Body {
			ch := "o"
			if i == 0 {
				ch = "@"
			}
			cells[[2]int{p[0], p[1]}] = cell{ch, style}
		}
	}

	var board strings.Builder
	for y := 0; y < m.gridH; y++ {
		for x := 0; x < m.gridW; x++ {
			if c, ok := cells[[2]int{x, y}]; ok {
				board.WriteString(c.style.Render(c.ch))
			} else {
				board.WriteString(dimStyle.Render("·"))
			}
		}
		if y < m.gridH-1 {
			board.WriteString("\n")
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("snake arena"))
	fmt.Fprintf(&b, "  %02d:%02d left", m.state.RemainingMS/60000, (m.state.RemainingMS/1000)%60)
	if !m.controller {
		b.WriteString(dimStyle.Render("  (spectating)"))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(board.String()))
	b.WriteString("\n")

	for _, s := range m.state.Snakes {
		style := slotStyles[s.Slot%len(slotStyles)]
		label := fmt.Sprintf("AI %d", s.Slot)
		if s.AI == 0 {
			label = "You "
		}
		status := ""
		if s.Alive == 0 {
			status = " (dead)"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %d%s", label, s.Length, status)))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if m.over != nil {
		b.WriteString("\n")
		if m.over.WinnerSlot < 0 {
			b.WriteString(titleStyle.Render("Game over: draw!"))
		} else if m.over.WinnerSlot == 0 {
			b.WriteString(titleStyle.Render("Game over: you win!"))
		} else {
			b.WriteString(titleStyle.Render(fmt.Sprintf("Game over: AI %d wins", m.over.WinnerSlot)))
		}
		b.WriteString("\n")
		for _, st := range m.over.Standings {
			label := fmt.Sprintf("AI %d", st.Slot)
			if st.Slot == 0 {
				label = "You "
			}
			fmt.Fprintf(&b, "  %s  %d\n", label, st.Length)
		}
		b.WriteString(dimStyle.Render("press r to play again, q to quit"))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("arrows/wasd to steer, q to quit"))
		b.WriteString("\n")
	}

	return b.String()
}
