package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"snake-arena/protocol"
)

// serverMsg carries one decoded server message into the bubbletea loop.
type serverMsg struct {
	welcome *protocol.WelcomeMsg
	state   *protocol.StateMsg
	over    *protocol.OverMsg
}

// connClosedMsg signals the websocket reader exited.
type connClosedMsg struct {
	err error
}

func waitForServer(msgs chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-msgs
	}
}

// readLoop decodes server frames and forwards them to the bubbletea loop.
func readLoop(ws *websocket.Conn, msgs chan tea.Msg) {
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			msgs <- connClosedMsg{err: err}
			return
		}

		var envelope struct {
			Type string `json:"t"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			continue
		}

		var out serverMsg
		switch envelope.Type {
		case protocol.MsgWelcome:
			var m protocol.WelcomeMsg
			if json.Unmarshal(raw, &m) == nil {
				out.welcome = &m
			}
		case protocol.MsgState:
			var m protocol.StateMsg
			if json.Unmarshal(raw, &m) == nil {
				out.state = &m
			}
		case protocol.MsgOver:
			var m protocol.OverMsg
			if json.Unmarshal(raw, &m) == nil {
				out.over = &m
			}
		default:
			continue
		}
		msgs <- out
	}
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "arena server websocket URL")
	name := flag.String("name", "Player", "player name")
	flag.Parse()

	ws, _, err := websocket.DefaultDialer.Dial(*addr, nil)
	if err != nil {
		log.Fatalf("cannot reach arena server at %s: %v", *addr, err)
	}
	defer ws.Close()

	if err := ws.WriteJSON(protocol.ClientMessage{Type: protocol.MsgJoin, Name: *name}); err != nil {
		log.Fatalf("join failed: %v", err)
	}

	msgs := make(chan tea.Msg, 16)
	go readLoop(ws, msgs)

	p := tea.NewProgram(initialModel(ws, msgs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}
