package arena

import (
	"math/rand"
	"sort"
	"time"
)

// State is the match lifecycle state.
type State int

const (
	Running State = iota
	Over          // terminal
)

// Match owns the full simulation: the four snakes, the food registry, the
// clock, and the deferred food-spawn schedule. All mutation happens inside
// Tick, on whichever goroutine drives it.
type Match struct {
	cfg      Config
	rng      *rand.Rand
	snakes   []*Snake // index == slot
	food     *FoodRegistry
	listener Listener

	tick           int
	durationTicks  int
	respawnTicks   int
	foodDelayTicks int

	// pendingSpawns holds the ticks at which scheduled food spawns fire.
	pendingSpawns []int

	leading *Snake // running winner estimate from combat outcomes
	state   State
	winner  *Snake
}

// TickReport aggregates the game events one tick produced.
type TickReport struct {
	Eaten  []EatenEvent
	Combat []CombatEvent
	Over   bool
}

// NewMatch creates a match with the player in slot 0 and the AI snakes at
// their fixed seed positions, and seeds the board with the target food
// count. A nil listener is replaced with NopListener.
func NewMatch(cfg Config, listener Listener) *Match {
	if listener == nil {
		listener = NopListener{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(seed)),
		food:           NewFoodRegistry(),
		listener:       listener,
		durationTicks:  cfg.ticks(cfg.MatchDuration),
		respawnTicks:   cfg.ticks(cfg.RespawnDelay),
		foodDelayTicks: cfg.ticks(cfg.FoodSpawnDelay),
	}

	w, h := cfg.GridWidth, cfg.GridHeight
	seeds := []Position{
		{w / 4, h / 2},     // player
		{3 * w / 4, h / 2}, // AI 1
		{w / 2, h / 4},     // AI 2
		{w / 2, 3 * h / 4}, // AI 3
	}
	for slot := 0; slot <= cfg.NumAISnakes && slot < len(seeds); slot++ {
		m.snakes = append(m.snakes, newSnake(cfg, slot, seeds[slot]))
	}

	for i := 0; i < cfg.TargetFoodCount; i++ {
		if !m.spawnFood() {
			break
		}
	}
	return m
}

// Tick advances the simulation by one step. No-op once the match is over.
func (m *Match) Tick() TickReport {
	if m.state == Over {
		return TickReport{Over: true}
	}

	var report TickReport

	// Scheduled food from earlier ticks fires first.
	m.fireDueSpawns()

	// AI decisions, then movement in slot order.
	for _, s := range m.snakes {
		s.decideDirection(m)
	}

	// The resolver compares candidate heads against pre-tick bodies.
	snap := m.snapshotSnakes()

	results := make(map[int]moveResult, len(m.snakes))
	for i, s := range m.snakes {
		wasAlive := s.Alive
		res := s.advance(m)
		results[i] = res
		if res.ate != nil {
			report.Eaten = append(report.Eaten, EatenEvent{
				Slot:   s.Slot,
				FoodID: res.ate.ID,
				Pos:    res.ate.Pos,
			})
			m.listener.OnFoodRemoved(res.ate.ID)
		}
		if res.moved || wasAlive != s.Alive {
			m.listener.OnSnakeBodyChanged(s)
		}
	}

	report.Combat = m.resolveCollisions(snap, results)
	for _, ev := range report.Combat {
		m.listener.OnSnakeBodyChanged(m.snakes[ev.VictimSlot])
		m.listener.OnSnakeBodyChanged(m.snakes[ev.SurvivorSlot])
	}

	// Replenishment is staggered: each pickup schedules a delayed spawn
	// while the board plus schedule sits below target.
	for range report.Eaten {
		if m.food.Count()+len(m.pendingSpawns) < m.cfg.TargetFoodCount {
			m.scheduleSpawn()
		}
	}
	// Independent random replenishment path.
	if m.rng.Float64() < m.cfg.FoodSpawnChance && m.food.Count() < m.cfg.TargetFoodCount {
		m.scheduleSpawn()
	}

	m.tick++
	if m.tick >= m.durationTicks {
		m.finish()
		report.Over = true
	}
	return report
}

func (m *Match) scheduleSpawn() {
	m.pendingSpawns = append(m.pendingSpawns, m.tick+m.foodDelayTicks)
}

func (m *Match) fireDueSpawns() {
	if len(m.pendingSpawns) == 0 {
		return
	}
	remaining := m.pendingSpawns[:0]
	for _, at := range m.pendingSpawns {
		if at > m.tick {
			remaining = append(remaining, at)
			continue
		}
		m.spawnFood()
	}
	m.pendingSpawns = remaining
}

// spawnFood places one food item clear of every living snake; existing food
// cells are excluded by the registry. Returns false when the board is full.
func (m *Match) spawnFood() bool {
	occupied := make(map[Position]bool)
	for _, s := range m.snakes {
		if !s.Alive {
			continue
		}
		for _, seg := range s.Body {
			occupied[seg] = true
		}
	}
	f, err := m.food.Spawn(m.cfg, m.rng, occupied)
	if err != nil {
		return false
	}
	m.listener.OnFoodSpawned(f)
	return true
}

// noteLeader updates the running winner estimate if s beats the current one.
func (m *Match) noteLeader(s *Snake) {
	if m.leading == nil || s.TargetLength > m.leading.TargetLength {
		m.leading = s
	}
}

// finish transitions to Over and settles the final winner: the longest
// living snake, nil when none is alive.
func (m *Match) finish() {
	m.state = Over
	for _, s := range m.snakes {
		if !s.Alive {
			continue
		}
		if m.winner == nil || s.TargetLength > m.winner.TargetLength {
			m.winner = s
		}
	}
	m.listener.OnMatchOver(m.winner, m.Standings())
}

// Standings returns all snakes sorted by length descending.
func (m *Match) Standings() []Standing {
	out := make([]Standing, len(m.snakes))
	for i, s := range m.snakes {
		out[i] = Standing{Slot: s.Slot, Length: s.TargetLength, Alive: s.Alive}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Length > out[j].Length })
	return out
}

// SetPlayerDirection feeds a steering intent to the player snake. Invalid
// intents are dropped silently.
func (m *Match) SetPlayerDirection(d Direction) {
	m.snakes[PlayerSlot].SetDirection(d)
}

// Snake returns the snake in a slot, nil for out-of-range slots.
func (m *Match) Snake(slot int) *Snake {
	if slot < 0 || slot >= len(m.snakes) {
		return nil
	}
	return m.snakes[slot]
}

// Snakes returns the fixed competitor set in slot order.
func (m *Match) Snakes() []*Snake {
	return m.snakes
}

// FoodItems returns the active food in stable ID order.
func (m *Match) FoodItems() []*Food {
	return m.food.Items()
}

// Leading returns the running winner estimate, which may differ from the
// final-timeout winner.
func (m *Match) Leading() *Snake {
	return m.leading
}

// IsOver reports whether the match reached its terminal state.
func (m *Match) IsOver() bool {
	return m.state == Over
}

// Winner returns the final winner once the match is over, nil otherwise or
// on a draw.
func (m *Match) Winner() *Snake {
	return m.winner
}

// Elapsed returns simulated time since match start.
func (m *Match) Elapsed() time.Duration {
	return time.Duration(m.tick) * m.cfg.TickInterval
}

// Remaining returns simulated time left on the match clock.
func (m *Match) Remaining() time.Duration {
	left := m.cfg.MatchDuration - m.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Config returns the match's ruleset.
func (m *Match) Config() Config {
	return m.cfg
}
