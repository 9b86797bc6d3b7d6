package event

import "testing"

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	t.Run("delivers to subscribers of the type only", func(t *testing.T) {
		d := NewDispatcher()
		kills := &recorder{}
		notes := &recorder{}
		d.Subscribe(EnemyKilled, kills)
		d.Subscribe(Notification, notes)

		d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Kind: "small", Credited: true}})
		d.Notify("hello")

		if len(kills.got) != 1 || len(notes.got) != 1 {
			t.Fatalf("kills=%d notes=%d", len(kills.got), len(notes.got))
		}
		if notes.got[0].Data.(string) != "hello" {
			t.Errorf("notification data = %v", notes.got[0].Data)
		}
	})

	t.Run("unsubscribe", func(t *testing.T) {
		d := NewDispatcher()
		r := &recorder{}
		calls := 0
		d.Subscribe(BossDefeated, ListenerFunc(func(Event) { calls++ }))
		d.Subscribe(BossDefeated, r)
		d.Unsubscribe(BossDefeated, r)
		d.Dispatch(Event{Type: BossDefeated})
		if len(r.got) != 0 {
			t.Error("unsubscribed listener still called")
		}
		if calls != 1 {
			t.Errorf("func listener calls = %d, want 1", calls)
		}
	})

	t.Run("nil dispatcher is a no-op", func(t *testing.T) {
		var d *Dispatcher
		d.Dispatch(Event{Type: PlayerDied})
	})
}
