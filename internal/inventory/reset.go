package inventory

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// ResetFailure records one device whose zero snapshot could not be written.
type ResetFailure struct {
	Device string `json:"device"`
	Reason string `json:"reason"`
}

// ResetReport is the structured outcome of a reset. The operation is
// best-effort: devices in Succeeded already have their zero snapshot and are
// not rolled back when others fail, so callers retry just the Failed set.
type ResetReport struct {
	Succeeded []string       `json:"succeeded"`
	Failed    []ResetFailure `json:"failed"`
}

// Ok reports whether every device was reset.
func (r ResetReport) Ok() bool {
	return len(r.Failed) == 0
}

// ZeroProducts builds a full-catalog product list with every quantity "0".
func ZeroProducts() []models.ProductQuantity {
	products := catalog.Products()
	out := make([]models.ProductQuantity, len(products))
	for i, p := range products {
		out[i] = models.ProductQuantity{ProductID: p.ID, Quantity: "0"}
	}
	return out
}

// ResetAll appends a zero-quantity snapshot for every device present in the
// store (not the static catalog). Inserts run concurrently and the call
// joins on completion of all of them.
func (s *Service) ResetAll(ctx context.Context) (ResetReport, error) {
	devices, err := s.repo.Devices()
	if err != nil {
		return ResetReport{}, err
	}

	report := ResetReport{}
	if len(devices) == 0 {
		return report, nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, device := range devices {
		g.Go(func() error {
			snapshot := models.Snapshot{
				Device:     device,
				Products:   ZeroProducts(),
				ReportedBy: "reset",
			}

			var insertErr error
			if insertErr = ctx.Err(); insertErr == nil {
				_, insertErr = s.repo.Create(snapshot)
			}

			mu.Lock()
			defer mu.Unlock()
			if insertErr != nil {
				report.Failed = append(report.Failed, ResetFailure{Device: device, Reason: insertErr.Error()})
			} else {
				report.Succeeded = append(report.Succeeded, device)
			}
			// Failures are collected per device; never cancel the siblings.
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(report.Succeeded)
	sort.Slice(report.Failed, func(i, j int) bool { return report.Failed[i].Device < report.Failed[j].Device })

	s.log.Info("inventories reset",
		zap.Int("succeeded", len(report.Succeeded)),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}
