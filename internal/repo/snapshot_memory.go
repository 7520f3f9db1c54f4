package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// InMemorySnapshotRepository is a mutex-guarded in-memory implementation of
// SnapshotRepository used by tests. The reset operation inserts concurrently,
// so every method takes the lock.
type InMemorySnapshotRepository struct {
	mu        sync.Mutex
	snapshots []models.Snapshot
	nextID    int
}

// NewInMemorySnapshotRepository creates an empty in-memory repository.
func NewInMemorySnapshotRepository() *InMemorySnapshotRepository {
	return &InMemorySnapshotRepository{nextID: 1}
}

// Create appends a new snapshot, assigning id and creation time.
func (r *InMemorySnapshotRepository) Create(s models.Snapshot) (models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.snapshots = append(r.snapshots, s)
	return s, nil
}

func (r *InMemorySnapshotRepository) GetByDevices(devices []string) ([]models.Snapshot, error) {
	wanted := make(map[string]bool, len(devices))
	for _, d := range devices {
		wanted[d] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Snapshot
	for _, s := range r.snapshots {
		if wanted[s.Device] {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *InMemorySnapshotRepository) GetAll() ([]models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Snapshot, len(r.snapshots))
	copy(out, r.snapshots)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Device != out[j].Device {
			return out[i].Device < out[j].Device
		}
		return newer(out[i], out[j])
	})
	return out, nil
}

func (r *InMemorySnapshotRepository) Devices() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]bool{}
	var out []string
	for _, s := range r.snapshots {
		if !seen[s.Device] {
			seen[s.Device] = true
			out = append(out, s.Device)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *InMemorySnapshotRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots = nil
	return nil
}

// Clear resets the repository to its initial state. Test helper.
func (r *InMemorySnapshotRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots = nil
	r.nextID = 1
}

// sortNewestFirst orders by creation time descending, breaking timestamp
// ties by descending id so inserts within the same instant stay ordered.
func sortNewestFirst(snaps []models.Snapshot) {
	sort.SliceStable(snaps, func(i, j int) bool {
		return newer(snaps[i], snaps[j])
	})
}

func newer(a, b models.Snapshot) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
