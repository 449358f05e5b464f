// Package protocol defines the compact JSON messages exchanged between the
// arena server and its renderers. Single-character keys keep per-tick state
// frames small.
//
// Message type constants (value of "t" field):
//
//	Client → Server:
//	  "j" = join    {"t":"j","n":"PlayerName"}
//	  "i" = input   {"t":"i","d":0}            (d = direction 0..3)
//	  "r" = restart {"t":"r"}
//	Server → Client:
//	  "w" = welcome {"t":"w","i":"id","g":[30,20],"c":1}  (c=1: you control the player snake)
//	  "s" = state   {"t":"s","k":42,"m":55040,"s":[snakes],"f":[food]}
//	  "o" = over    {"t":"o","w":0,"r":[standings]}       (w = winner slot, -1 draw)
//
// SnakeDTO: {"o":0,"b":[[x,y],...],"a":1,"l":7,"z":0}  (o=slot, a=alive, l=length, z=isAI)
// FoodDTO:  {"i":"food-3","x":12,"y":7}
package protocol

// Direction values on the wire, in the simulation's enum order.
const (
	DirUp    = 0
	DirDown  = 1
	DirLeft  = 2
	DirRight = 3
)

// Message type identifiers
const (
	MsgJoin    = "j"
	MsgInput   = "i"
	MsgRestart = "r"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgOver    = "o"
)

// ClientMessage is the base incoming message from a renderer.
//
//	{"t":"j","n":"name"}  join
//	{"t":"i","d":2}       input
//	{"t":"r"}             restart
type ClientMessage struct {
	Type      string `json:"t"`
	Name      string `json:"n,omitempty"`
	Direction int    `json:"d"`
}

// WelcomeMsg is sent immediately on connect.
// {"t":"w","i":"uuid","g":[30,20],"c":1}
type WelcomeMsg struct {
	Type       string `json:"t"`
	ID         string `json:"i"`
	Grid       [2]int `json:"g"` // [width, height] in cells
	Controller int    `json:"c"` // 1 if this connection steers the player snake
}

// SnakeDTO is one snake in a state frame. Body cells are [x,y] pairs,
// head first.
// {"o":0,"b":[[7,10],[6,10],[5,10]],"a":1,"l":3,"z":0}
type SnakeDTO struct {
	Slot   int      `json:"o"`
	Body   [][2]int `json:"b"`
	Alive  int      `json:"a"` // 0 or 1
	Length int      `json:"l"`
	AI     int      `json:"z"` // 0 or 1
}

// FoodDTO is one food item in a state frame.
// {"i":"food-3","x":12,"y":7}
type FoodDTO struct {
	ID string `json:"i"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// StateMsg is the per-tick state frame.
// {"t":"s","k":42,"m":55040,"s":[snakes],"f":[food]}
type StateMsg struct {
	Type        string     `json:"t"`
	Tick        int        `json:"k"`
	RemainingMS int64      `json:"m"`
	Snakes      []SnakeDTO `json:"s"`
	Food        []FoodDTO  `json:"f"`
}

// StandingDTO is one row of the final table.
// {"o":0,"l":9,"a":1}
type StandingDTO struct {
	Slot   int `json:"o"`
	Length int `json:"l"`
	Alive  int `json:"a"`
}

// OverMsg announces the terminal match state.
// {"t":"o","w":0,"r":[standings]}
type OverMsg struct {
	Type       string        `json:"t"`
	WinnerSlot int           `json:"w"` // -1 when no snake survived (draw)
	Standings  []StandingDTO `json:"r"`
}
