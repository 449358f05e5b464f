package arena

// snakeSnapshot freezes one snake's pre-tick state for the resolver. Every
// pairwise check this tick compares candidate heads against the same frozen
// boards, so resolution order cannot change outcomes.
type snakeSnapshot struct {
	alive  bool
	length int
	body   []Position
}

func (m *Match) snapshotSnakes() []snakeSnapshot {
	snap := make([]snakeSnapshot, len(m.snakes))
	for i, s := range m.snakes {
		snap[i] = snakeSnapshot{
			alive:  s.Alive,
			length: s.TargetLength,
			body:   append([]Position(nil), s.Body...),
		}
	}
	return snap
}

// resolveCollisions runs the cross-snake checks for one tick. snap holds the
// pre-tick bodies and lengths; results holds the new head each snake
// produced this tick (absent when it was dead or died from wall). Snakes
// that died during the advance phase take no part on either side.
func (m *Match) resolveCollisions(snap []snakeSnapshot, results map[int]moveResult) []CombatEvent {
	var events []CombatEvent
	for ai, a := range m.snakes {
		ra, ok := results[ai]
		if !ok || !ra.moved || !a.Alive {
			continue
		}
		for bi, b := range m.snakes {
			if ai == bi || !b.Alive || !snap[bi].alive {
				continue
			}

			// Both moved into the same cell: a true head-on tie is a
			// non-event for the pair.
			if rb, ok := results[bi]; ok && rb.moved && rb.newHead == ra.newHead {
				continue
			}

			hit := false
			for _, seg := range snap[bi].body {
				if seg == ra.newHead {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}

			ev := m.resolvePair(a, b, snap[ai], snap[bi], ra.newHead)
			events = append(events, ev)
		}
	}
	return events
}

// resolvePair applies the outcome of mover a striking b's pre-tick body at
// cell hit. The shorter (or equal-length) party dies crediting the other; a
// strictly longer mover wins outright and the struck snake dies with no
// bonus.
func (m *Match) resolvePair(a, b *Snake, sa, sb snakeSnapshot, hit Position) CombatEvent {
	bHead := sb.body[0]

	switch {
	case sa.length < sb.length:
		kind := CombatTail
		bonus := m.cfg.RegularBonus
		if bHead == hit {
			kind = CombatHead
			bonus = m.cfg.HeadOnBonus
		}
		a.die(m, b, CauseCombat)
		if b.Alive {
			b.TargetLength += bonus
		} else {
			bonus = 0
		}
		return CombatEvent{Kind: kind, SurvivorSlot: b.Slot, VictimSlot: a.Slot, Bonus: bonus}

	case sa.length == sb.length:
		a.die(m, b, CauseCombat)
		return CombatEvent{Kind: CombatEqual, SurvivorSlot: b.Slot, VictimSlot: a.Slot}

	default:
		b.die(m, a, CauseCombat)
		return CombatEvent{Kind: CombatGeneric, SurvivorSlot: a.Slot, VictimSlot: b.Slot}
	}
}
