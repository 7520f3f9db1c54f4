// Package report renders the consolidated inventory document. The output is
// plain text shaped like the historical "PDF": downstream consumers (export,
// print, mail, archive) all use the rendered text verbatim.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

const separator = "================================================================================"

const dateLayout = "02/01/2006 15:04"

// Render formats the latest snapshot per device plus the optional LAC
// consolidated aggregate into the report document. Output is deterministic:
// identical inputs and timestamp produce byte-identical text.
func Render(latest map[string]models.Snapshot, consolidated map[string]int, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("INVENTARIO DE PRODUCTOS DE LIMPIEZA - MPDL\n")
	b.WriteString("Movimiento por la Paz, el Desarme y la Libertad\n\n")
	fmt.Fprintf(&b, "Fecha de generación: %s\n\n", generatedAt.Format(dateLayout))
	b.WriteString(separator + "\n\n")

	index := 0
	for _, device := range catalog.Devices() {
		if device == catalog.ConsolidatedDevice {
			continue
		}
		snap, ok := latest[device]
		if !ok {
			continue
		}
		index++
		writeDeviceSection(&b, index, snap)
	}

	if len(consolidated) > 0 {
		writeConsolidatedSection(&b, consolidated)
	}

	b.WriteString(separator + "\n\n")
	b.WriteString("Sistema de Inventarios MPDL\n")
	b.WriteString("Generado automáticamente • Todos los datos son confidenciales\n\n")
	b.WriteString(separator)

	return b.String()
}

func writeDeviceSection(b *strings.Builder, index int, snap models.Snapshot) {
	fmt.Fprintf(b, "%d. DISPOSITIVO: %s\n", index, snap.Device)
	fmt.Fprintf(b, "   Última actualización: %s\n\n", snap.CreatedAt.Format(dateLayout))
	b.WriteString("   PRODUCTOS:\n")

	listed := 0
	for _, pq := range sortedByCatalog(snap.Products) {
		if pq.Quantity == "" || pq.Quantity == "0" {
			continue
		}
		listed++
		fmt.Fprintf(b, "   - %s: %s\n", catalog.ProductName(pq.ProductID), pq.Quantity)
	}
	if listed == 0 {
		b.WriteString("   - No hay productos registrados con cantidad mayor a 0\n")
	}
	b.WriteString("\n")
}

func writeConsolidatedSection(b *strings.Builder, consolidated map[string]int) {
	b.WriteString(separator + "\n\n")
	b.WriteString("LAC CONSOLIDADO\n")
	fmt.Fprintf(b, "Suma total de los dispositivos %s\n\n", strings.Join(catalog.LACSubUnits, ", "))
	b.WriteString("PRODUCTOS CONSOLIDADOS:\n")

	ids := make([]string, 0, len(consolidated))
	for id := range consolidated {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := catalog.ProductPosition(ids[i]), catalog.ProductPosition(ids[j])
		if pi != pj {
			return pi < pj
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		if consolidated[id] == 0 {
			continue
		}
		fmt.Fprintf(b, "- %s: %d\n", catalog.ProductName(id), consolidated[id])
	}
	b.WriteString("\n")
}

// sortedByCatalog orders product quantities by catalog declaration order.
// Unknown ids keep their relative order after every known product.
func sortedByCatalog(products []models.ProductQuantity) []models.ProductQuantity {
	out := make([]models.ProductQuantity, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return catalog.ProductPosition(out[i].ProductID) < catalog.ProductPosition(out[j].ProductID)
	})
	return out
}
