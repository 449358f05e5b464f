package arena

// DeathCause classifies how a snake died.
type DeathCause string

const (
	CauseWall   DeathCause = "wall"
	CauseSelf   DeathCause = "self"
	CauseCombat DeathCause = "snake"
)

// CombatKind classifies a cross-snake collision.
type CombatKind string

const (
	// CombatHead: the mover struck a larger snake's head cell.
	CombatHead CombatKind = "snake_head"
	// CombatTail: the mover struck a larger snake's body segment.
	CombatTail CombatKind = "snake_tail"
	// CombatEqual: equal lengths; the mover dies, the struck snake survives.
	CombatEqual CombatKind = "snake_equal"
	// CombatGeneric: every other case, including a longer mover striking a
	// smaller snake's body (the struck snake dies, no bonus).
	CombatGeneric CombatKind = "snake"
)

// EatenEvent records a food pickup during a tick.
type EatenEvent struct {
	Slot   int // snake that ate
	FoodID string
	Pos    Position
}

// CombatEvent records a resolved cross-snake collision.
type CombatEvent struct {
	Kind         CombatKind
	SurvivorSlot int
	VictimSlot   int
	Bonus        int // target-length bonus awarded to the survivor
}

// Standing is one row of the end-of-match table.
type Standing struct {
	Slot   int
	Length int
	Alive  bool
}

// Listener receives state-change notifications from a match. Implementations
// own all drawing; the match never blocks on them beyond the call itself.
type Listener interface {
	OnSnakeBodyChanged(s *Snake)
	OnFoodSpawned(f *Food)
	OnFoodRemoved(foodID string)
	OnMatchOver(winner *Snake, standings []Standing)
}

// NopListener discards all notifications.
type NopListener struct{}

func (NopListener) OnSnakeBodyChanged(*Snake)      {}
func (NopListener) OnFoodSpawned(*Food)            {}
func (NopListener) OnFoodRemoved(string)           {}
func (NopListener) OnMatchOver(*Snake, []Standing) {}
