// Package catalog holds the fixed product and device definitions. Both lists
// are immutable at runtime; every other package resolves ids against them.
package catalog

import "fmt"

// Product is one entry of the fixed cleaning-products list.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductIDMisc is the miscellaneous free-text product ("Otros"). It is
// excluded from every numeric aggregation.
const ProductIDMisc = "cp014"

// ConsolidatedDevice is the virtual device exposing the summed LAC view.
// It is never a save target and owns no snapshots.
const ConsolidatedDevice = "LAC_CONSOLIDATED_INVENTORY"

var products = buildProducts([]string{
	"Lavavajillas",
	"Papel Cocina",
	"Bolsas Basura",
	"Friegasuelos",
	"Deterg. Vitro",
	"Quitagrasas",
	"Deterg. Lavadora",
	"Ambientador",
	"Bayetas",
	"Estropajos",
	"Lejía",
	"Limpiacristales",
	"Limp. Baño",
	"Otros",
})

// devices is kept sorted; report sections follow this order.
var devices = []string{
	"Academia",
	"CE",
	"CM",
	"CR",
	"EH",
	"GV2",
	"GV3",
	"GV4",
	"LAC1",
	"LAC2",
	"LAC3",
	"LAC4",
	"LAC5",
	"LAC6",
	"LAC_Almacen",
	ConsolidatedDevice,
	"MF",
	"MM",
	"NG1",
	"NG2",
	"Oficina",
}

// LACSubUnits are the six devices summed into the consolidated view.
var LACSubUnits = []string{"LAC1", "LAC2", "LAC3", "LAC4", "LAC5", "LAC6"}

func buildProducts(names []string) []Product {
	ps := make([]Product, len(names))
	for i, name := range names {
		ps[i] = Product{ID: fmt.Sprintf("cp%03d", i+1), Name: name}
	}
	return ps
}

// Products returns the catalog in declaration order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Devices returns every device identifier, the consolidated one included.
func Devices() []string {
	out := make([]string, len(devices))
	copy(out, devices)
	return out
}

// SaveableDevices returns the devices a snapshot may be written for.
func SaveableDevices() []string {
	out := make([]string, 0, len(devices)-1)
	for _, d := range devices {
		if d != ConsolidatedDevice {
			out = append(out, d)
		}
	}
	return out
}

// ProductName resolves a product id to its display name. Unknown ids come
// back as the raw id so historical rows never break rendering.
func ProductName(id string) string {
	for _, p := range products {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// KnownProduct reports whether id belongs to the catalog.
func KnownProduct(id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// KnownDevice reports whether name is a catalog device, consolidated included.
func KnownDevice(name string) bool {
	for _, d := range devices {
		if d == name {
			return true
		}
	}
	return false
}

// ProductPosition returns the declaration-order index of a product id, or
// len(catalog) for unknown ids so they sort after every known product.
func ProductPosition(id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return len(products)
}

// QuantityOptions returns the selector values offered for a product on a
// given device. The miscellaneous product has no options (free text).
func QuantityOptions(device, productID string) []string {
	if productID == ProductIDMisc {
		return nil
	}
	if device == "MM" || device == "MF" {
		if opts, ok := mmMfQuantities[productID]; ok {
			return opts
		}
	}
	if isLACSubUnit(device) {
		if productID == "cp002" {
			return []string{"0", "1", "2"}
		}
		return []string{"0", "1"}
	}
	if opts, ok := generalQuantities[productID]; ok {
		return opts
	}
	return []string{"0", "1"}
}

func isLACSubUnit(device string) bool {
	for _, d := range LACSubUnits {
		if d == device {
			return true
		}
	}
	return false
}

var generalQuantities = map[string][]string{
	"cp001": {"0", "1"},
	"cp002": {"0", "1", "2", "3"},
	"cp003": {"0", "1", "2"},
	"cp004": {"0", "1"},
	"cp005": {"0", "1"},
	"cp006": {"0", "1"},
	"cp007": {"0", "1", "2"},
	"cp008": {"0", "1", "2"},
	"cp009": {"0", "1"},
	"cp010": {"0", "1"},
	"cp011": {"0", "1"},
	"cp012": {"0", "1"},
	"cp013": {"0", "1"},
}

var mmMfQuantities = map[string][]string{
	"cp001": {"0", "1", "2"},
	"cp002": {"0", "1", "2", "3", "4"},
	"cp003": {"0", "1", "2", "3"},
	"cp004": {"0", "1", "2"},
	"cp005": {"0", "1"},
	"cp006": {"0", "1"},
	"cp007": {"0", "1", "2", "3"},
	"cp009": {"0", "1"},
	"cp010": {"0", "1"},
	"cp011": {"0", "1"},
	"cp012": {"0", "1"},
	"cp013": {"0", "1"},
}
