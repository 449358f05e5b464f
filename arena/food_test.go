package arena

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFoodSpawn_AvoidsOccupiedAndExistingFood(t *testing.T) {
	cfg := testConfig()
	cfg.GridWidth = 3
	cfg.GridHeight = 1
	rng := rand.New(rand.NewSource(3))
	r := NewFoodRegistry()

	occupied := map[Position]bool{{0, 0}: true}
	first, err := r.Spawn(cfg, rng, occupied)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if first.Pos == (Position{0, 0}) {
		t.Fatalf("food spawned on occupied cell %v", first.Pos)
	}

	// The second spawn must avoid the first item too.
	second, err := r.Spawn(cfg, rng, map[Position]bool{{0, 0}: true})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if second.Pos == first.Pos || second.Pos == (Position{0, 0}) {
		t.Fatalf("second food at %v overlaps", second.Pos)
	}

	if first.ID != "food-1" || second.ID != "food-2" {
		t.Fatalf("ids=%s,%s want monotonic food-1,food-2", first.ID, second.ID)
	}
}

func TestFoodSpawn_FullBoard(t *testing.T) {
	cfg := testConfig()
	cfg.GridWidth = 1
	cfg.GridHeight = 1
	rng := rand.New(rand.NewSource(3))
	r := NewFoodRegistry()

	if _, err := r.Spawn(cfg, rng, nil); err != nil {
		t.Fatalf("first spawn should use the only cell: %v", err)
	}
	_, err := r.Spawn(cfg, rng, map[Position]bool{})
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err=%v want ErrBoardFull", err)
	}
}

func TestFoodRemove(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(3))
	r := NewFoodRegistry()

	f, err := r.Spawn(cfg, rng, nil)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if !r.Remove(f.ID) {
		t.Fatal("remove reported missing item")
	}
	if r.Remove(f.ID) {
		t.Fatal("second remove should report missing")
	}
	if r.Count() != 0 {
		t.Fatalf("count=%d want=0", r.Count())
	}
	if _, ok := r.At(f.Pos); ok {
		t.Fatal("position index still holds removed food")
	}
}
