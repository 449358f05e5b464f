package arena

import "testing"

func TestCollision_HeadOnTieIsANonEvent(t *testing.T) {
	m := newBareMatch(testConfig())
	a := addSnake(m, []Position{{5, 5}, {4, 5}, {3, 5}}, Right, false)
	b := addSnake(m, []Position{{7, 5}, {8, 5}, {9, 5}}, Left, false)

	report := m.Tick()
	if len(report.Combat) != 0 {
		t.Fatalf("combat events=%v want none\n%s", report.Combat, dumpMatch(m))
	}
	if !a.Alive || !b.Alive {
		t.Fatalf("head-on tie killed a snake\n%s", dumpMatch(m))
	}
}

func TestCollision_ShorterMoverIntoHead_HeadOnBonus(t *testing.T) {
	m := newBareMatch(testConfig())
	a := addSnake(m, []Position{{5, 5}, {4, 5}, {3, 5}}, Right, false)
	b := addSnake(m, []Position{{6, 5}, {7, 5}, {8, 5}, {9, 5}, {10, 5}}, Up, false)

	report := m.Tick()
	if len(report.Combat) != 1 {
		t.Fatalf("combat events=%d want=1\n%s", len(report.Combat), dumpMatch(m))
	}
	ev := report.Combat[0]
	if ev.Kind != CombatHead {
		t.Fatalf("kind=%s want=%s", ev.Kind, CombatHead)
	}
	if ev.VictimSlot != a.Slot || ev.SurvivorSlot != b.Slot {
		t.Fatalf("event=%+v: shorter mover must die", ev)
	}
	if a.Alive {
		t.Fatalf("shorter mover survived\n%s", dumpMatch(m))
	}
	if b.TargetLength != 5+m.cfg.HeadOnBonus {
		t.Fatalf("survivor length=%d want=%d", b.TargetLength, 5+m.cfg.HeadOnBonus)
	}
	if m.Leading() != b {
		t.Fatalf("leading snake not updated after combat\n%s", dumpMatch(m))
	}
}

func TestCollision_ShorterMoverIntoBody_RegularBonus(t *testing.T) {
	m := newBareMatch(testConfig())
	a := addSnake(m, []Position{{5, 5}, {4, 5}, {3, 5}}, Right, false)
	b := addSnake(m, []Position{{6, 3}, {6, 4}, {6, 5}, {6, 6}, {6, 7}}, Up, false)

	report := m.Tick()
	if len(report.Combat) != 1 {
		t.Fatalf("combat events=%d want=1\n%s", len(report.Combat), dumpMatch(m))
	}
	ev := report.Combat[0]
	if ev.Kind != CombatTail {
		t.Fatalf("kind=%s want=%s", ev.Kind, CombatTail)
	}
	if ev.Bonus != m.cfg.RegularBonus {
		t.Fatalf("bonus=%d want=%d", ev.Bonus, m.cfg.RegularBonus)
	}
	if a.Alive {
		t.Fatalf("shorter mover survived\n%s", dumpMatch(m))
	}
	if b.TargetLength != 5+m.cfg.RegularBonus {
		t.Fatalf("survivor length=%d want=%d", b.TargetLength, 5+m.cfg.RegularBonus)
	}
}

func TestCollision_EqualLength_MoverDiesNoBonus(t *testing.T) {
	m := newBareMatch(testConfig())
	a := addSnake(m, []Position{{5, 5}, {4, 5}, {3, 5}}, Right, false)
	b := addSnake(m, []Position{{6, 4}, {6, 5}, {6, 6}}, Up, false)

	report := m.Tick()
	if len(report.Combat) != 1 {
		t.Fatalf("combat events=%d want=1\n%s", len(report.Combat), dumpMatch(m))
	}
	ev := report.Combat[0]
	if ev.Kind != CombatEqual {
		t.Fatalf("kind=%s want=%s", ev.Kind, CombatEqual)
	}
	if a.Alive || !b.Alive {
		t.Fatalf("equal-length: the mover dies, the struck snake survives\n%s", dumpMatch(m))
	}
	if b.TargetLength != 3 {
		t.Fatalf("survivor length=%d want unchanged 3", b.TargetLength)
	}
}

func TestCollision_LongerMover_StruckSnakeDies(t *testing.T) {
	m := newBareMatch(testConfig())
	a := addSnake(m, []Position{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}}, Right, false)
	b := addSnake(m, []Position{{6, 4}, {6, 5}, {6, 6}}, Up, false)

	report := m.Tick()
	if len(report.Combat) != 1 {
		t.Fatalf("combat events=%d want=1\n%s", len(report.Combat), dumpMatch(m))
	}
	ev := report.Combat[0]
	if ev.Kind != CombatGeneric {
		t.Fatalf("kind=%s want=%s", ev.Kind, CombatGeneric)
	}
	if !a.Alive || b.Alive {
		t.Fatalf("longer mover wins outright\n%s", dumpMatch(m))
	}
	if a.TargetLength != 5 {
		t.Fatalf("mover length=%d want unchanged 5 (no bonus)", a.TargetLength)
	}
}
