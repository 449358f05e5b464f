package arena

// PlayerSlot is the slot index of the human-controlled snake.
const PlayerSlot = 0

// Snake is one of the four competitors. Slot is its stable identity for the
// whole match; slot 0 is the player, the rest are AI.
type Snake struct {
	Slot         int
	Body         []Position // index 0 = head
	Direction    Direction
	TargetLength int
	Alive        bool
	IsAI         bool

	// pending is the direction committed at the start of the next advance.
	// For the player it is written by SetDirection, for AI by decideDirection.
	pending    Direction
	hasPending bool

	// foodTarget holds at most one queued food position; consumed once per
	// AI decision.
	foodTarget *Position

	respawnAt int // tick at which a dead snake may respawn
}

// newSnake creates a snake at its slot seed position, body extending left
// from the head, facing right.
func newSnake(cfg Config, slot int, head Position) *Snake {
	body := make([]Position, cfg.InitialSnakeLength)
	for i := range body {
		body[i] = Position{head.X - i, head.Y}
	}
	return &Snake{
		Slot:         slot,
		Body:         body,
		Direction:    Right,
		TargetLength: cfg.InitialSnakeLength,
		Alive:        true,
		IsAI:         slot != PlayerSlot,
	}
}

// Head returns the head cell. Only valid while the body is non-empty.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// SetDirection applies a player steering intent. Dropped silently if the
// snake is dead, AI-controlled, or the intent reverses the current direction.
func (s *Snake) SetDirection(d Direction) {
	if !s.Alive || s.IsAI {
		return
	}
	if d == s.Direction.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// Grow increments the target length; the body extends toward it on later
// ticks.
func (s *Snake) Grow() {
	s.TargetLength++
}

// moveResult is what a single advance produced, aggregated by the match
// controller instead of being threaded through shared state.
type moveResult struct {
	moved   bool
	newHead Position
	ate     *Food
}

// advance executes one tick for this snake: respawn bookkeeping when dead,
// otherwise commit the pending direction, step the head, eat or trim, and
// detect wall/self deaths. The new head is reported for cross-snake
// collision resolution.
func (s *Snake) advance(m *Match) moveResult {
	if !s.Alive {
		if s.respawnAt > 0 && m.tick >= s.respawnAt {
			s.respawn(m)
		}
		return moveResult{}
	}

	if s.hasPending {
		s.Direction = s.pending
		s.hasPending = false
	}

	newHead := s.Head().Add(s.Direction)
	if !m.cfg.inBounds(newHead) {
		s.die(m, nil, CauseWall)
		return moveResult{}
	}

	res := moveResult{moved: true, newHead: newHead}
	if f, ok := m.food.At(newHead); ok {
		// Eating: the tail stays this tick, net length +1.
		s.Grow()
		s.Body = append([]Position{newHead}, s.Body...)
		m.food.Remove(f.ID)
		res.ate = f
	} else {
		s.Body = append([]Position{newHead}, s.Body...)
		for len(s.Body) > s.TargetLength {
			s.Body = s.Body[:len(s.Body)-1]
		}
	}

	for _, seg := range s.Body[1:] {
		if seg == newHead {
			s.die(m, nil, CauseSelf)
			return res
		}
	}
	return res
}

// die marks the snake dead and schedules its respawn. Idempotent. A combat
// death (attacker != nil) also feeds the match's leading-snake accumulator:
// the larger living party takes the lead if it beats the previous leader.
func (s *Snake) die(m *Match, attacker *Snake, cause DeathCause) {
	if !s.Alive {
		return
	}
	s.Alive = false
	s.respawnAt = m.tick + m.respawnTicks
	s.foodTarget = nil
	s.hasPending = false

	if attacker != nil && cause == CauseCombat {
		candidate := attacker
		if s.TargetLength > attacker.TargetLength {
			candidate = s
		}
		if candidate.Alive {
			m.noteLeader(candidate)
		}
	}
}

// respawn brings a dead snake back on a random cell clear of every living
// snake's body, reset to initial length and facing right.
func (s *Snake) respawn(m *Match) {
	occupied := make(map[Position]bool)
	for _, other := range m.snakes {
		if other == s || !other.Alive {
			continue
		}
		for _, seg := range other.Body {
			occupied[seg] = true
		}
	}
	pos, ok := findEmptyCell(m.cfg, m.rng, occupied)
	if !ok {
		// Board packed solid; try again next tick.
		s.respawnAt = m.tick + 1
		return
	}

	s.Body = []Position{pos}
	s.TargetLength = m.cfg.InitialSnakeLength
	s.Direction = Right
	s.Alive = true
	s.respawnAt = 0
	s.foodTarget = nil
	s.hasPending = false
}
