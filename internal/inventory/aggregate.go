package inventory

import (
	"strconv"

	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

// SumGroup accumulates per-product integer quantities across a set of
// snapshots, excluding excludedID (the miscellaneous free-text product).
// Quantities that do not parse as a base-10 integer, or parse negative, are
// skipped rather than treated as zero. Only product ids that contributed at
// least one valid value appear in the result; callers treat absent keys as 0.
func SumGroup(snapshots map[string]models.Snapshot, excludedID string) map[string]int {
	sums := make(map[string]int)
	for _, snap := range snapshots {
		for _, pq := range snap.Products {
			if pq.ProductID == excludedID {
				continue
			}
			qty, err := strconv.Atoi(pq.Quantity)
			if err != nil || qty < 0 {
				continue
			}
			sums[pq.ProductID] += qty
		}
	}
	return sums
}
