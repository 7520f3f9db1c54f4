package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
	"github.com/mpdl-apps/cleaning-inventory/internal/repo"
)

func newTestService() (*Service, *repo.InMemorySnapshotRepository) {
	store := repo.NewInMemorySnapshotRepository()
	return NewService(store, nil), store
}

func TestSaveAppendsSnapshot(t *testing.T) {
	svc, store := newTestService()

	stored, err := svc.Save("CE", "Usuario MPDL", []models.ProductQuantity{{ProductID: "cp001", Quantity: "1"}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if stored.ID == 0 || stored.CreatedAt.IsZero() {
		t.Errorf("expected generated id and timestamp, got %+v", stored)
	}

	again, err := svc.Save("CE", "Usuario MPDL", []models.ProductQuantity{{ProductID: "cp001", Quantity: "2"}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if again.ID == stored.ID {
		t.Error("saves must append, never mutate")
	}

	all, _ := store.GetAll()
	if len(all) != 2 {
		t.Errorf("expected 2 rows in the store, got %d", len(all))
	}
}

func TestSaveRejectsUnknownDevice(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Save("Bodega", "", nil); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("expected ErrUnknownDevice, got %v", err)
	}
	if _, err := svc.Save(catalog.ConsolidatedDevice, "", nil); !errors.Is(err, ErrUnknownDevice) {
		t.Errorf("the consolidated device is read-only, got %v", err)
	}
}

func TestSaveRejectsUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Save("CE", "", []models.ProductQuantity{{ProductID: "cp099", Quantity: "1"}})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestConsolidatedUsesLatestSnapshots(t *testing.T) {
	svc, store := newTestService()
	base := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	// LAC1 reports twice: only the second snapshot may count.
	store.Create(snap("LAC1", base, map[string]string{"cp001": "9"}))
	store.Create(snap("LAC1", base.Add(time.Hour), map[string]string{"cp001": "2"}))
	store.Create(snap("LAC2", base, map[string]string{"cp001": "2", "cp002": "1"}))
	store.Create(snap("LAC3", base, map[string]string{"cp001": "2"}))
	// Not a sub-unit: must not contribute.
	store.Create(snap("LAC_Almacen", base, map[string]string{"cp001": "50"}))

	sums, err := svc.Consolidated()
	if err != nil {
		t.Fatalf("Consolidated: %v", err)
	}
	if sums["cp001"] != 6 {
		t.Errorf("expected cp001 -> 6, got %d", sums["cp001"])
	}
	if sums["cp002"] != 1 {
		t.Errorf("expected cp002 -> 1, got %d", sums["cp002"])
	}
}

func TestResetAllWritesZeroSnapshots(t *testing.T) {
	svc, store := newTestService()
	base := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	store.Create(snap("CE", base, map[string]string{"cp001": "1"}))
	store.Create(snap("MM", base, map[string]string{"cp002": "2"}))

	reset, err := svc.ResetAll(context.Background())
	if err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if !reset.Ok() {
		t.Fatalf("expected a clean reset, got failures: %+v", reset.Failed)
	}
	if len(reset.Succeeded) != 2 {
		t.Fatalf("expected 2 devices reset, got %d", len(reset.Succeeded))
	}

	latest, err := svc.LatestByDevices([]string{"CE", "MM"})
	if err != nil {
		t.Fatal(err)
	}
	for _, device := range []string{"CE", "MM"} {
		s, ok := latest[device]
		if !ok {
			t.Fatalf("device %s missing after reset", device)
		}
		if len(s.Products) != 14 {
			t.Fatalf("expected the full catalog in the zero snapshot, got %d products", len(s.Products))
		}
		for _, pq := range s.Products {
			if pq.Quantity != "0" {
				t.Errorf("device %s product %s: expected \"0\", got %q", device, pq.ProductID, pq.Quantity)
			}
		}
	}
}

func TestResetAllOnEmptyStore(t *testing.T) {
	svc, _ := newTestService()

	reset, err := svc.ResetAll(context.Background())
	if err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if len(reset.Succeeded) != 0 || len(reset.Failed) != 0 {
		t.Errorf("expected an empty report, got %+v", reset)
	}
}

// failingStore makes Create fail for selected devices so the partial-failure
// policy can be observed.
type failingStore struct {
	*repo.InMemorySnapshotRepository
	failFor map[string]bool
}

func (s *failingStore) Create(snapshot models.Snapshot) (models.Snapshot, error) {
	if s.failFor[snapshot.Device] {
		return models.Snapshot{}, errors.New("insert refused")
	}
	return s.InMemorySnapshotRepository.Create(snapshot)
}

func TestResetAllReportsPartialFailure(t *testing.T) {
	inner := repo.NewInMemorySnapshotRepository()
	base := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	inner.Create(snap("CE", base, map[string]string{"cp001": "1"}))
	inner.Create(snap("MM", base, map[string]string{"cp001": "1"}))
	inner.Create(snap("CR", base, map[string]string{"cp001": "1"}))

	store := &failingStore{InMemorySnapshotRepository: inner, failFor: map[string]bool{"MM": true}}
	svc := NewService(store, nil)

	reset, err := svc.ResetAll(context.Background())
	if err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if reset.Ok() {
		t.Fatal("expected a failure to be reported")
	}
	if len(reset.Succeeded) != 2 {
		t.Errorf("succeeded devices must not be rolled back: got %v", reset.Succeeded)
	}
	if len(reset.Failed) != 1 || reset.Failed[0].Device != "MM" {
		t.Errorf("expected exactly MM to fail, got %+v", reset.Failed)
	}
	if reset.Failed[0].Reason == "" {
		t.Error("failures must carry a reason so callers can retry precisely")
	}
}

func TestClearAllRemovesEverything(t *testing.T) {
	svc, store := newTestService()
	store.Create(snap("CE", time.Now(), map[string]string{"cp001": "1"}))

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	all, _ := store.GetAll()
	if len(all) != 0 {
		t.Errorf("expected an empty store, got %d rows", len(all))
	}
}

func TestLatestForDeviceAbsent(t *testing.T) {
	svc, _ := newTestService()

	_, ok, err := svc.LatestForDevice("CE")
	if err != nil {
		t.Fatalf("LatestForDevice: %v", err)
	}
	if ok {
		t.Error("a device with no snapshots must report ok=false, not an error")
	}
}
