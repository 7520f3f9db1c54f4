package inventory

import "github.com/mpdl-apps/cleaning-inventory/internal/models"

// LatestByDevice replays a creation-time-descending snapshot log and keeps
// the first snapshot seen per device. Devices with no snapshots are simply
// absent from the result.
func LatestByDevice(snapshots []models.Snapshot) map[string]models.Snapshot {
	latest := make(map[string]models.Snapshot, len(snapshots))
	for _, s := range snapshots {
		if _, ok := latest[s.Device]; !ok {
			latest[s.Device] = s
		}
	}
	return latest
}
