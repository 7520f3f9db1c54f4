package handlers

import (
	"fmt"
	"strings"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateSaveRequest checks the request shape against the catalog: the
// device must be a real, saveable location and every product id must exist.
func validateSaveRequest(req SaveInventoryRequest) []ValidationError {
	errs := []ValidationError{}

	device := strings.TrimSpace(req.Device)
	switch {
	case device == "":
		errs = append(errs, ValidationError{Field: "device", Description: "device is required"})
	case device == catalog.ConsolidatedDevice:
		errs = append(errs, ValidationError{Field: "device", Description: "the consolidated device is read-only"})
	case !catalog.KnownDevice(device):
		errs = append(errs, ValidationError{Field: "device", Description: fmt.Sprintf("unknown device %q", device)})
	}

	if len(req.Products) == 0 {
		errs = append(errs, ValidationError{Field: "products", Description: "at least one product quantity is required"})
	}

	seen := map[string]bool{}
	for _, pq := range req.Products {
		if !catalog.KnownProduct(pq.ProductID) {
			errs = append(errs, ValidationError{Field: "products", Description: fmt.Sprintf("unknown product id %q", pq.ProductID)})
			continue
		}
		if seen[pq.ProductID] {
			errs = append(errs, ValidationError{Field: "products", Description: fmt.Sprintf("duplicate product id %q", pq.ProductID)})
		}
		seen[pq.ProductID] = true
	}

	return errs
}
