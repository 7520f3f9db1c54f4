package inventory

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
	"github.com/mpdl-apps/cleaning-inventory/internal/repo"
)

var (
	// ErrUnknownDevice is returned when a save targets a device outside the
	// catalog, or the virtual consolidated device.
	ErrUnknownDevice = errors.New("unknown device")
	// ErrUnknownProduct is returned when a save references a product id the
	// catalog does not define.
	ErrUnknownProduct = errors.New("unknown product id")
)

// Service implements the inventory operations on top of a snapshot store.
type Service struct {
	repo repo.SnapshotRepository
	log  *zap.Logger
}

func NewService(r repo.SnapshotRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: r, log: logger}
}

// Save validates and appends a new snapshot for a device. The consolidated
// device is computed on read and never a save target.
func (s *Service) Save(device, reportedBy string, products []models.ProductQuantity) (models.Snapshot, error) {
	if device == catalog.ConsolidatedDevice || !catalog.KnownDevice(device) {
		return models.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownDevice, device)
	}
	for _, pq := range products {
		if !catalog.KnownProduct(pq.ProductID) {
			return models.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownProduct, pq.ProductID)
		}
	}

	snapshot := models.Snapshot{
		Device:     device,
		Products:   products,
		ReportedBy: reportedBy,
		Date:       time.Now().UTC().Format("2006-01-02"),
	}
	stored, err := s.repo.Create(snapshot)
	if err != nil {
		return models.Snapshot{}, err
	}

	s.log.Info("snapshot saved",
		zap.String("device", device),
		zap.Int("products", len(products)),
		zap.Int("id", stored.ID))
	return stored, nil
}

// LatestForDevice returns the most recent snapshot for one device. A device
// with no snapshots yields ok=false, not an error.
func (s *Service) LatestForDevice(device string) (models.Snapshot, bool, error) {
	latest, err := s.LatestByDevices([]string{device})
	if err != nil {
		return models.Snapshot{}, false, err
	}
	snap, ok := latest[device]
	return snap, ok, nil
}

// LatestByDevices resolves the most recent snapshot per requested device.
func (s *Service) LatestByDevices(devices []string) (map[string]models.Snapshot, error) {
	snapshots, err := s.repo.GetByDevices(devices)
	if err != nil {
		return nil, err
	}
	return LatestByDevice(snapshots), nil
}

// LatestAll resolves the most recent snapshot for every device ever saved,
// the feed consumed by the report renderer.
func (s *Service) LatestAll() (map[string]models.Snapshot, error) {
	snapshots, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return LatestByDevice(snapshots), nil
}

// Consolidated sums the latest snapshots of the six LAC sub-units,
// excluding the miscellaneous product.
func (s *Service) Consolidated() (map[string]int, error) {
	latest, err := s.LatestByDevices(catalog.LACSubUnits)
	if err != nil {
		return nil, err
	}
	return SumGroup(latest, catalog.ProductIDMisc), nil
}

// ClearAll removes every snapshot for every device.
func (s *Service) ClearAll() error {
	if err := s.repo.DeleteAll(); err != nil {
		return err
	}
	s.log.Warn("all snapshots deleted")
	return nil
}
