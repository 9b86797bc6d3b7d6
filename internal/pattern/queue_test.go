package pattern

import "testing"

func TestShotQueueOrdering(t *testing.T) {
	q := NewShotQueue()
	q.Schedule(5, []Shot{{X: 1}})
	q.Schedule(2, []Shot{{X: 2}})
	q.Schedule(2, []Shot{{X: 3}})
	q.Schedule(1, nil)

	if q.Len() != 3 {
		t.Fatalf("len = %d, want 3 (empty volleys are ignored)", q.Len())
	}

	if got := q.Tick(); len(got) != 0 {
		t.Fatalf("tick 1 fired %v", got)
	}
	got := q.Tick()
	if len(got) != 2 || got[0].X != 2 || got[1].X != 3 {
		t.Fatalf("tick 2 = %v, want volleys 2 then 3", got)
	}
	for i := 3; i < 5; i++ {
		if got := q.Tick(); len(got) != 0 {
			t.Fatalf("tick %d fired early: %v", i, got)
		}
	}
	got = q.Tick()
	if len(got) != 1 || got[0].X != 1 {
		t.Fatalf("tick 5 = %v", got)
	}
	if q.Len() != 0 {
		t.Error("queue must be drained")
	}
}

func TestShotQueueRelativeToClock(t *testing.T) {
	q := NewShotQueue()
	q.Tick()
	q.Tick()
	q.Schedule(1, []Shot{{X: 9}})
	if got := q.Tick(); len(got) != 1 {
		t.Errorf("volley scheduled one frame ahead must fire on the next tick, got %v", got)
	}
}
