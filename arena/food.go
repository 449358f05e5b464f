package arena

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrBoardFull is returned when no free cell is left to place food on.
var ErrBoardFull = errors.New("no space available for food")

// Food is a collectible item on the grid. The ID is assigned at spawn and
// stable for the item's lifetime.
type Food struct {
	ID  string
	Pos Position
}

// FoodRegistry tracks the active food items. The ID counter belongs to the
// registry, so two matches never share numbering.
type FoodRegistry struct {
	items   map[string]*Food
	byPos   map[Position]*Food
	counter int
}

// NewFoodRegistry creates an empty registry.
func NewFoodRegistry() *FoodRegistry {
	return &FoodRegistry{
		items: make(map[string]*Food),
		byPos: make(map[Position]*Food),
	}
}

// Spawn places a new food item on a random cell not present in occupied.
// Existing food cells are excluded in addition to the caller's set.
func (r *FoodRegistry) Spawn(cfg Config, rng *rand.Rand, occupied map[Position]bool) (*Food, error) {
	for pos := range r.byPos {
		occupied[pos] = true
	}
	pos, ok := findEmptyCell(cfg, rng, occupied)
	if !ok {
		return nil, ErrBoardFull
	}

	r.counter++
	f := &Food{ID: fmt.Sprintf("food-%d", r.counter), Pos: pos}
	r.items[f.ID] = f
	r.byPos[pos] = f
	return f, nil
}

// Remove deletes a food item by ID. Returns false if no such item exists.
func (r *FoodRegistry) Remove(id string) bool {
	f, ok := r.items[id]
	if !ok {
		return false
	}
	delete(r.items, id)
	delete(r.byPos, f.Pos)
	return true
}

// At returns the food occupying a cell, if any.
func (r *FoodRegistry) At(pos Position) (*Food, bool) {
	f, ok := r.byPos[pos]
	return f, ok
}

// Count returns the number of active items.
func (r *FoodRegistry) Count() int {
	return len(r.items)
}

// Items returns the active food sorted by ID so iteration order is stable
// across ticks and test runs.
func (r *FoodRegistry) Items() []*Food {
	out := make([]*Food, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
