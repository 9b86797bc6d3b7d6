package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordState struct {
	name   string
	calls  *[]string
	frames []int
}

func (r *recordState) Enter() { *r.calls = append(*r.calls, r.name+".enter") }
func (r *recordState) Update(frame int) { r.frames = append(r.frames, frame) }
func (r *recordState) Draw(_ *ebiten.Image) {}
func (r *recordState) Exit() { *r.calls = append(*r.calls, r.name+".exit") }

func TestStateMachine(t *testing.T) {
	t.Run("update without a state only counts frames", func(t *testing.T) {
		sm := NewStateMachine()
		sm.Update()
		if sm.Frame() != 1 || sm.Current() != nil {
			t.Errorf("frame %d current %v", sm.Frame(), sm.Current())
		}
	})

	t.Run("switch exits the old state before entering the new one", func(t *testing.T) {
		var calls []string
		sm := NewStateMachine()
		a := &recordState{name: "menu", calls: &calls}
		b := &recordState{name: "game", calls: &calls}
		sm.SetState(a)
		sm.SetState(b)
		want := []string{"menu.enter", "menu.exit", "game.enter"}
		if len(calls) != len(want) {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
		for i := range want {
			if calls[i] != want[i] {
				t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
			}
		}
	})

	t.Run("frame number keeps counting across states", func(t *testing.T) {
		var calls []string
		sm := NewStateMachine()
		a := &recordState{name: "menu", calls: &calls}
		b := &recordState{name: "game", calls: &calls}
		sm.SetState(a)
		sm.Update()
		sm.Update()
		sm.SetState(b)
		sm.Update()
		if len(a.frames) != 2 || a.frames[1] != 2 {
			t.Errorf("menu frames = %v", a.frames)
		}
		if len(b.frames) != 1 || b.frames[0] != 3 {
			t.Errorf("game frames = %v, want [3]", b.frames)
		}
	})
}
