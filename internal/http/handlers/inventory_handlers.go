package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} Result
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Result{Success: true})
}

// GetDevicesHandler godoc
// @Summary List the tracked devices
// @Description Returns every device identifier plus the virtual consolidated one.
// @Tags catalog
// @Produce json
// @Success 200 {object} DeviceListResponse
// @Router /devices [get]
func GetDevicesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DeviceListResponse{
		Devices:      catalog.Devices(),
		Consolidated: catalog.ConsolidatedDevice,
	})
}

// GetProductsHandler godoc
// @Summary List the product catalog
// @Description Returns the products in declaration order. With ?device= the
// @Description per-device quantity selector options are included.
// @Tags catalog
// @Produce json
// @Param device query string false "Device to resolve quantity options for"
// @Success 200 {array} ProductOption
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	device := r.URL.Query().Get("device")

	products := catalog.Products()
	response := make([]ProductOption, len(products))
	for i, p := range products {
		opt := ProductOption{ID: p.ID, Name: p.Name, FreeText: p.ID == catalog.ProductIDMisc}
		if device != "" {
			opt.Quantities = catalog.QuantityOptions(device, p.ID)
		}
		response[i] = opt
	}
	writeJSON(w, http.StatusOK, response)
}

// GetLatestInventoryHandler godoc
// @Summary Latest snapshot for one device
// @Description A device with no snapshots yields success with empty quantities.
// @Tags inventories
// @Produce json
// @Param device query string true "Device identifier"
// @Success 200 {object} LatestInventoryResponse
// @Failure 400 {object} Result
// @Failure 503 {object} Result
// @Router /inventories/latest [get]
func GetLatestInventoryHandler(w http.ResponseWriter, r *http.Request) {
	device := r.URL.Query().Get("device")
	if device == "" || !catalog.KnownDevice(device) {
		writeFailure(w, http.StatusBadRequest, "a known device is required")
		return
	}

	snap, ok, err := inventoryService.LatestForDevice(device)
	if err != nil {
		logger.Error("failed to resolve latest snapshot", zap.String("device", device), zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not load the latest inventory")
		return
	}

	resp := LatestInventoryResponse{Success: true, Quantities: map[string]string{}}
	if ok {
		for _, pq := range snap.Products {
			resp.Quantities[pq.ProductID] = pq.Quantity
		}
		resp.CreatedAt = snap.CreatedAt.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetConsolidatedHandler godoc
// @Summary LAC consolidated quantities
// @Description Sums the latest snapshot of each LAC sub-unit, excluding the
// @Description miscellaneous product. Absent product ids mean zero.
// @Tags inventories
// @Produce json
// @Success 200 {object} ConsolidatedResponse
// @Failure 503 {object} Result
// @Router /inventories/consolidated [get]
func GetConsolidatedHandler(w http.ResponseWriter, r *http.Request) {
	sums, err := inventoryService.Consolidated()
	if err != nil {
		logger.Error("failed to compute consolidated view", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not load the consolidated LAC data")
		return
	}
	writeJSON(w, http.StatusOK, ConsolidatedResponse{Success: true, Quantities: sums})
}

// SaveInventoryHandler godoc
// @Summary Save a new inventory snapshot
// @Description Appends a snapshot for the device; existing rows are never mutated.
// @Tags inventories
// @Accept json
// @Produce json
// @Param snapshot body SaveInventoryRequest true "Snapshot to save"
// @Success 201 {object} SaveInventoryResponse
// @Failure 400 {array} ValidationError
// @Failure 503 {object} Result
// @Router /inventories [post]
func SaveInventoryHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveInventoryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateSaveRequest(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	reportedBy := req.ReportedBy
	if reportedBy == "" {
		reportedBy = "Usuario MPDL"
	}

	stored, err := inventoryService.Save(req.Device, reportedBy, req.Products)
	if err != nil {
		logger.Error("failed to save snapshot", zap.String("device", req.Device), zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not save the inventory")
		return
	}

	reportService.InvalidateCache()
	writeJSON(w, http.StatusCreated, SaveInventoryResponse{Success: true, Snapshot: stored})
}

// ResetInventoriesHandler godoc
// @Summary Reset every known device to zero
// @Description Appends a zero-quantity snapshot per device ever saved.
// @Description Best-effort: devices already reset are not rolled back when
// @Description others fail; retry the failed set.
// @Tags inventories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ResetResponse
// @Failure 503 {object} Result
// @Router /inventories/reset [post]
func ResetInventoriesHandler(w http.ResponseWriter, r *http.Request) {
	resetReport, err := inventoryService.ResetAll(r.Context())
	if err != nil {
		logger.Error("failed to enumerate devices for reset", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not reset the inventories")
		return
	}

	reportService.InvalidateCache()

	resp := ResetResponse{
		Success:   resetReport.Ok(),
		Succeeded: resetReport.Succeeded,
		Failed:    resetReport.Failed,
	}
	if resetReport.Ok() {
		resp.Message = resetMessage(len(resetReport.Succeeded))
	} else {
		resp.Message = "some inventories could not be reset"
	}
	writeJSON(w, http.StatusOK, resp)
}

func resetMessage(count int) string {
	if count == 1 {
		return "1 inventory reset to zero"
	}
	return fmt.Sprintf("%d inventories reset to zero", count)
}

// ClearInventoriesHandler godoc
// @Summary Delete every snapshot for every device
// @Tags inventories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Result
// @Failure 503 {object} Result
// @Router /inventories [delete]
func ClearInventoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := inventoryService.ClearAll(); err != nil {
		logger.Error("failed to clear snapshots", zap.Error(err))
		writeFailure(w, http.StatusServiceUnavailable, "could not clear the inventories")
		return
	}
	reportService.InvalidateCache()
	writeJSON(w, http.StatusOK, Result{Success: true})
}
