package arena

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"
)

// testConfig returns a small, fully deterministic ruleset: one tick per
// scheduled-delay unit and a long clock so tests end matches explicitly.
func testConfig() Config {
	return Config{
		GridWidth:          12,
		GridHeight:         10,
		TickInterval:       80 * time.Millisecond,
		MatchDuration:      time.Hour,
		NumAISnakes:        3,
		InitialSnakeLength: 3,
		RespawnDelay:       240 * time.Millisecond, // 3 ticks
		TargetFoodCount:    0,
		FoodSpawnDelay:     80 * time.Millisecond, // 1 tick
		FoodSpawnChance:    0,
		HeadOnBonus:        4,
		RegularBonus:       2,
		Seed:               1,
	}
}

// newBareMatch builds a match with no snakes and no food, for tests that
// stage exact board states.
func newBareMatch(cfg Config) *Match {
	return &Match{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(cfg.Seed)),
		food:           NewFoodRegistry(),
		listener:       NopListener{},
		durationTicks:  cfg.ticks(cfg.MatchDuration),
		respawnTicks:   cfg.ticks(cfg.RespawnDelay),
		foodDelayTicks: cfg.ticks(cfg.FoodSpawnDelay),
	}
}

// addSnake registers a snake with an explicit body. isAI=false keeps the
// scripted direction across ticks (no AI decision overrides it).
func addSnake(m *Match, body []Position, dir Direction, isAI bool) *Snake {
	s := &Snake{
		Slot:         len(m.snakes),
		Body:         append([]Position(nil), body...),
		Direction:    dir,
		TargetLength: len(body),
		Alive:        true,
		IsAI:         isAI,
	}
	m.snakes = append(m.snakes, s)
	return s
}

// placeFood puts a food item on a known cell through the registry.
func placeFood(m *Match, pos Position) *Food {
	m.food.counter++
	f := &Food{ID: fmt.Sprintf("food-%d", m.food.counter), Pos: pos}
	m.food.items[f.ID] = f
	m.food.byPos[pos] = f
	return f
}

// dumpMatch renders the board for failure output: heads as letters A..,
// bodies as digits of the slot, food as '*', empty as '.'.
func dumpMatch(m *Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d over=%v\n", m.tick, m.IsOver())
	for _, s := range m.snakes {
		fmt.Fprintf(&b, "snake %d alive=%v len=%d dir=%s body:", s.Slot, s.Alive, s.TargetLength, s.Direction)
		for _, p := range s.Body {
			fmt.Fprintf(&b, " (%d,%d)", p.X, p.Y)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "food(%d):", m.food.Count())
	for _, f := range m.food.Items() {
		fmt.Fprintf(&b, " %s(%d,%d)", f.ID, f.Pos.X, f.Pos.Y)
	}
	b.WriteString("\nboard:\n")

	type cellmark struct {
		ch byte
	}
	marks := map[Position]cellmark{}
	for _, f := range m.food.Items() {
		marks[f.Pos] = cellmark{'*'}
	}
	for _, s := range m.snakes {
		if !s.Alive {
			continue
		}
		for i, p := range s.Body {
			if i == 0 {
				marks[p] = cellmark{byte('A' + s.Slot)}
			} else if _, taken := marks[p]; !taken {
				marks[p] = cellmark{byte('0' + s.Slot)}
			}
		}
	}
	for y := 0; y < m.cfg.GridHeight; y++ {
		for x := 0; x < m.cfg.GridWidth; x++ {
			if mk, ok := marks[Position{x, y}]; ok {
				b.WriteByte(mk.ch)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func assertBody(t *testing.T, m *Match, s *Snake, want []Position) {
	t.Helper()
	if len(s.Body) != len(want) {
		t.Fatalf("snake %d body len=%d want=%d\n%s", s.Slot, len(s.Body), len(want), dumpMatch(m))
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Fatalf("snake %d body[%d]=%v want=%v\n%s", s.Slot, i, s.Body[i], want[i], dumpMatch(m))
		}
	}
}
