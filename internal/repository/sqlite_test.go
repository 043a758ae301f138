package repository

import (
	"path/filepath"
	"testing"
	"time"

	"device_library/internal/models"
	"device_library/internal/repository/db"
)

func TestSQLite_RoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "devices.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	repos := NewRepository(conn)

	at := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	if err := repos.SelectionRepo.Save(ctx(t), models.Selection{UserID: "u1", DeviceID: "arduinoUno", UpdatedAt: at}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repos.SelectionRepo.Save(ctx(t), models.Selection{UserID: "u1", DeviceID: "microbitV2", UpdatedAt: at.Add(time.Minute)}); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	sel, err := repos.SelectionRepo.Load(ctx(t), "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sel.DeviceID != "microbitV2" || !sel.UpdatedAt.Equal(at.Add(time.Minute)) {
		t.Fatalf("selection = %+v", sel)
	}

	for i, label := range []string{"arduinoUno", "microbitV2", "arduinoNano"} {
		err := repos.EventRepo.Append(ctx(t), models.DeviceEvent{
			OccurredAt: at.Add(time.Duration(i) * time.Hour),
			Category:   models.EventCategoryDevices,
			Action:     models.EventActionSelect,
			Label:      label,
			UserID:     "u1",
			Metadata:   map[string]any{"n": i},
		})
		if err != nil {
			t.Fatalf("Append %s: %v", label, err)
		}
	}

	got, err := repos.EventRepo.List(ctx(t), at.Add(time.Hour), at.Add(2*time.Hour), models.EventActionSelect)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Label != "microbitV2" || got[1].Label != "arduinoNano" {
		t.Fatalf("events = %+v", got)
	}
	if got[0].EventID == "" || got[0].UserID != "u1" {
		t.Fatalf("event fields = %+v", got[0])
	}

	none, err := repos.EventRepo.List(ctx(t), time.Time{}, time.Time{}, "other action")
	if err != nil || len(none) != 0 {
		t.Fatalf("filtered list = %+v, %v", none, err)
	}
}
