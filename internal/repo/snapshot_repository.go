package repo

import (
	"errors"

	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// SnapshotRepository defines the append-only access pattern the inventory
// service needs from the record store. Every result set is ordered most
// recent first so callers can resolve "latest wins" by replaying the log.
type SnapshotRepository interface {
	// Create inserts a new snapshot and returns it with the generated id
	// and creation timestamp filled in.
	Create(s models.Snapshot) (models.Snapshot, error)
	// GetByDevices returns every snapshot whose device is in the set,
	// ordered by creation time descending.
	GetByDevices(devices []string) ([]models.Snapshot, error)
	// GetAll returns every snapshot ordered by device ascending, then
	// creation time descending.
	GetAll() ([]models.Snapshot, error)
	// Devices returns the distinct devices that have ever been saved,
	// ascending.
	Devices() ([]string, error)
	// DeleteAll removes every snapshot for every device.
	DeleteAll() error
}

// ErrStoreUnavailable wraps connection-level failures of the backing store.
// Callers surface it to the user instead of returning partial data.
var ErrStoreUnavailable = errors.New("inventory store unavailable")
