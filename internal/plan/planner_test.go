package plan

import "testing"

func TestScheduleAndNext(t *testing.T) {
	p := New()
	if p.IsPlanning() {
		t.Fatal("new planner should be idle")
	}

	p.Schedule("ur r\n")
	if got := p.Remaining(); got != 3 {
		t.Fatalf("Remaining() = %d, expected 3", got)
	}

	want := []rune("urr")
	for i, w := range want {
		if r, ok := p.Peek(); !ok || r != w {
			t.Fatalf("step %d: Peek() = %q, %v", i, r, ok)
		}
		r, ok := p.Next()
		if !ok || r != w {
			t.Fatalf("step %d: Next() = %q, %v; expected %q", i, r, ok, w)
		}
	}
	if _, ok := p.Next(); ok {
		t.Error("Next() on empty queue should report false")
	}
	if p.IsPlanning() {
		t.Error("planner should be idle after draining")
	}
}

func TestInterruptPlan(t *testing.T) {
	tests := []struct {
		name       string
		schedule   string
		interrupts int
	}{
		{"empty", "", 0},
		{"pending", "udlr", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.Schedule(tt.schedule)
			p.InterruptPlan()
			if p.IsPlanning() {
				t.Error("IsPlanning() should be false after interrupt")
			}
			if p.Interrupts() != tt.interrupts {
				t.Errorf("Interrupts() = %d, expected %d", p.Interrupts(), tt.interrupts)
			}
		})
	}
}
