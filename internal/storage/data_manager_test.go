package storage

import "testing"

func TestInMemoryDataManager(t *testing.T) {
	dm := NewDataManager(nil)

	dm.AddKills(30)
	dm.AddKills(12)
	dm.AddKills(-5)
	if dm.TotalKills() != 42 {
		t.Errorf("total = %d, want 42", dm.TotalKills())
	}
	if dm.HighestKills() != 30 {
		t.Errorf("highest = %d, want 30", dm.HighestKills())
	}

	dm.AddRescue()
	dm.AddRescue()
	if dm.TotalRescues() != 2 {
		t.Errorf("rescues = %d", dm.TotalRescues())
	}

	t.Run("spend", func(t *testing.T) {
		if dm.SpendKills(50) {
			t.Error("spent more than available")
		}
		if !dm.SpendKills(40) {
			t.Fatal("spend failed")
		}
		if dm.TotalKills() != 2 {
			t.Errorf("total = %d after spend", dm.TotalKills())
		}
		if dm.HighestKills() != 30 {
			t.Error("spending changed the record")
		}
	})

	t.Run("load without backend resets", func(t *testing.T) {
		if err := dm.Load(); err != nil {
			t.Fatal(err)
		}
		if dm.Snapshot() != (Stats{}) {
			t.Errorf("stats = %+v", dm.Snapshot())
		}
	})
}
