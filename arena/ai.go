package arena

// validMove reports whether stepping from the head in direction d lands in
// bounds and off this snake's own body. Other snakes are deliberately not
// consulted; cross-snake outcomes are the resolver's job.
func (s *Snake) validMove(cfg Config, d Direction) bool {
	p := s.Head().Add(d)
	if !cfg.inBounds(p) {
		return false
	}
	for _, seg := range s.Body {
		if seg == p {
			return false
		}
	}
	return true
}

// decideDirection picks the AI snake's next pending direction. Greedy
// one-step steering only: avoid walls and own body, head toward the queued
// food target when one exists.
func (s *Snake) decideDirection(m *Match) {
	if !s.Alive || !s.IsAI {
		return
	}

	valid := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.validMove(m.cfg, d) {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		// Boxed in. Keep going and let the next advance settle it.
		s.pending = s.Direction
		s.hasPending = true
		return
	}

	if s.foodTarget == nil {
		s.foodTarget = m.nearestFood(s.Head())
	}

	if target := s.foodTarget; target != nil {
		s.foodTarget = nil // one decision per queued target
		s.pending = s.steerToward(m, *target, valid)
		s.hasPending = true
		return
	}

	// No food anywhere: keep the previous choice while it stays legal.
	if s.hasPending && s.validMove(m.cfg, s.pending) {
		return
	}
	s.pending = valid[m.rng.Intn(len(valid))]
	s.hasPending = true
}

// steerToward returns the direction moving the head toward target:
// axis-dominant first, then the two perpendicular directions in fixed order
// (toward the non-dominant axis's sign, then its opposite), then random.
func (s *Snake) steerToward(m *Match, target Position, valid []Direction) Direction {
	head := s.Head()
	dx := target.X - head.X
	dy := target.Y - head.Y

	var preferred, alt1, alt2 Direction
	if abs(dx) > abs(dy) {
		preferred = Left
		if dx > 0 {
			preferred = Right
		}
		alt1, alt2 = Up, Down
		if dy > 0 {
			alt1, alt2 = Down, Up
		}
	} else {
		preferred = Up
		if dy > 0 {
			preferred = Down
		}
		alt1, alt2 = Left, Right
		if dx > 0 {
			alt1, alt2 = Right, Left
		}
	}

	for _, d := range []Direction{preferred, alt1, alt2} {
		if containsDirection(valid, d) {
			return d
		}
	}
	return valid[m.rng.Intn(len(valid))]
}

func containsDirection(list []Direction, d Direction) bool {
	for _, v := range list {
		if v == d {
			return true
		}
	}
	return false
}

// nearestFood returns the position of the closest food item by Manhattan
// distance, or nil if the board has none. Ties break on lowest food ID via
// the registry's stable iteration order.
func (m *Match) nearestFood(from Position) *Position {
	var best *Position
	bestDist := 0
	for _, f := range m.food.Items() {
		d := ManhattanDistance(from, f.Pos)
		if best == nil || d < bestDist {
			pos := f.Pos
			best = &pos
			bestDist = d
		}
	}
	return best
}
