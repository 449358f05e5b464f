package arena

import "time"

// Game rules constants
const (
	// Grid
	GridWidth  = 30 // cells horizontally
	GridHeight = 20 // cells vertically

	// Match
	TickInterval  = 80 * time.Millisecond // game speed (lower = faster)
	MatchDuration = 60 * time.Second

	// Snakes
	NumAISnakes        = 3
	InitialSnakeLength = 3
	RespawnDelay       = 3 * time.Second

	// Food
	TargetFoodCount = 10   // initial count, also the replenishment target
	FoodSpawnDelay  = time.Second
	FoodSpawnChance = 0.05 // probability per tick of an extra scheduled spawn

	// Combat bonuses awarded to the surviving larger snake
	HeadOnBonus  = 4 // victim moved into the survivor's head cell
	RegularBonus = 2 // victim moved into a body segment
)

// Config carries the match tuning knobs. The constants above are the fixed
// defaults; a Config exists so tests and replays can run small grids and
// seeded randomness.
type Config struct {
	GridWidth  int
	GridHeight int

	TickInterval  time.Duration
	MatchDuration time.Duration

	NumAISnakes        int
	InitialSnakeLength int
	RespawnDelay       time.Duration

	TargetFoodCount int
	FoodSpawnDelay  time.Duration
	FoodSpawnChance float64

	HeadOnBonus  int
	RegularBonus int

	// Seed for the match RNG. 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns the standard ruleset.
func DefaultConfig() Config {
	return Config{
		GridWidth:          GridWidth,
		GridHeight:         GridHeight,
		TickInterval:       TickInterval,
		MatchDuration:      MatchDuration,
		NumAISnakes:        NumAISnakes,
		InitialSnakeLength: InitialSnakeLength,
		RespawnDelay:       RespawnDelay,
		TargetFoodCount:    TargetFoodCount,
		FoodSpawnDelay:     FoodSpawnDelay,
		FoodSpawnChance:    FoodSpawnChance,
		HeadOnBonus:        HeadOnBonus,
		RegularBonus:       RegularBonus,
	}
}

// ticks converts a duration to a whole tick count, rounding up so a
// non-zero delay never collapses to "this tick".
func (c Config) ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int((d + c.TickInterval - 1) / c.TickInterval)
	if n < 1 {
		n = 1
	}
	return n
}
