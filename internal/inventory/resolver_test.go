package inventory

import (
	"testing"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/models"
	"github.com/mpdl-apps/cleaning-inventory/internal/repo"
)

func snap(device string, createdAt time.Time, quantities map[string]string) models.Snapshot {
	s := models.Snapshot{Device: device, CreatedAt: createdAt}
	for id, q := range quantities {
		s.Products = append(s.Products, models.ProductQuantity{ProductID: id, Quantity: q})
	}
	return s
}

func TestLatestByDeviceKeepsNewestPerDevice(t *testing.T) {
	store := repo.NewInMemorySnapshotRepository()
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	for _, s := range []models.Snapshot{
		snap("CE", base, map[string]string{"cp001": "1"}),
		snap("CE", base.Add(time.Hour), map[string]string{"cp001": "2"}),
		snap("CE", base.Add(30*time.Minute), map[string]string{"cp001": "3"}),
		snap("MM", base, map[string]string{"cp002": "1"}),
	} {
		if _, err := store.Create(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	snapshots, err := store.GetByDevices([]string{"CE", "MM", "CR"})
	if err != nil {
		t.Fatalf("GetByDevices: %v", err)
	}
	latest := LatestByDevice(snapshots)

	if len(latest) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(latest))
	}
	if got := latest["CE"].Products[0].Quantity; got != "2" {
		t.Errorf("expected the newest CE snapshot to win, got quantity %q", got)
	}
	if !latest["CE"].CreatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("expected max creation timestamp, got %v", latest["CE"].CreatedAt)
	}
	if _, ok := latest["CR"]; ok {
		t.Error("a device with zero snapshots must be absent, not an error")
	}
}

func TestLatestByDeviceTieBreaksOnInsertionOrder(t *testing.T) {
	store := repo.NewInMemorySnapshotRepository()
	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	if _, err := store.Create(snap("CE", at, map[string]string{"cp001": "1"})); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Create(snap("CE", at, map[string]string{"cp001": "2"})); err != nil {
		t.Fatal(err)
	}

	snapshots, err := store.GetByDevices([]string{"CE"})
	if err != nil {
		t.Fatal(err)
	}
	latest := LatestByDevice(snapshots)
	if got := latest["CE"].Products[0].Quantity; got != "2" {
		t.Errorf("expected the later insert to win the timestamp tie, got %q", got)
	}
}

func TestLatestByDeviceEmptyLog(t *testing.T) {
	latest := LatestByDevice(nil)
	if len(latest) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(latest))
	}
}
