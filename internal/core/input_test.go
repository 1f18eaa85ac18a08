package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should be independent of the original")
	}
}

func TestHeldInputHoldsForTicks(t *testing.T) {
	h := NewHeldInput(3)

	press := NewInputFrame()
	press.Set(ActionRight)
	empty := NewInputFrame()

	h.Observe(press)
	for tick := 1; tick <= 2; tick++ {
		if !h.Held(ActionRight) {
			t.Fatalf("Right should be held at tick %d", tick)
		}
		h.Observe(empty)
	}
	if !h.Held(ActionRight) {
		t.Fatal("Right should be held for exactly three ticks")
	}
	h.Observe(empty)
	if h.Held(ActionRight) {
		t.Error("Right should be released after the hold window")
	}
}

func TestHeldInputOppositeReleases(t *testing.T) {
	h := NewHeldInput(10)

	right := NewInputFrame()
	right.Set(ActionRight)
	left := NewInputFrame()
	left.Set(ActionLeft)

	h.Observe(right)
	if h.Axis(ActionLeft, ActionRight) != 1 {
		t.Fatalf("Axis() = %d, expected 1", h.Axis(ActionLeft, ActionRight))
	}

	h.Observe(left)
	if h.Held(ActionRight) {
		t.Error("pressing Left should release Right")
	}
	if h.Axis(ActionLeft, ActionRight) != -1 {
		t.Errorf("Axis() = %d, expected -1", h.Axis(ActionLeft, ActionRight))
	}

	h.Reset()
	if h.Axis(ActionLeft, ActionRight) != 0 {
		t.Error("Reset should release all directions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionFire, "Fire"},
		{ActionLeft, "Left"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
