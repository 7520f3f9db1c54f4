package inventory

import (
	"testing"
	"time"

	"github.com/mpdl-apps/cleaning-inventory/internal/catalog"
	"github.com/mpdl-apps/cleaning-inventory/internal/models"
)

func TestSumGroupAcrossSubUnits(t *testing.T) {
	at := time.Now()
	latest := map[string]models.Snapshot{
		"LAC1": snap("LAC1", at, map[string]string{"cp001": "2"}),
		"LAC2": snap("LAC2", at, map[string]string{"cp001": "2"}),
		"LAC3": snap("LAC3", at, map[string]string{"cp001": "2"}),
		"LAC4": snap("LAC4", at, nil),
		"LAC5": snap("LAC5", at, nil),
		"LAC6": snap("LAC6", at, nil),
	}

	sums := SumGroup(latest, catalog.ProductIDMisc)
	if sums["cp001"] != 6 {
		t.Errorf("expected cp001 -> 6, got %d", sums["cp001"])
	}
}

func TestSumGroupSkipsInvalidValues(t *testing.T) {
	at := time.Now()
	latest := map[string]models.Snapshot{
		"LAC1": snap("LAC1", at, map[string]string{"cp002": "abc"}),
		"LAC2": snap("LAC2", at, map[string]string{"cp002": "3", "cp003": "-1"}),
		"LAC3": snap("LAC3", at, map[string]string{"cp002": ""}),
	}

	sums := SumGroup(latest, catalog.ProductIDMisc)
	if sums["cp002"] != 3 {
		t.Errorf("unparseable quantities must be skipped, not zeroed: got %d", sums["cp002"])
	}
	if _, ok := sums["cp003"]; ok {
		t.Error("negative quantities must be skipped")
	}
}

func TestSumGroupExcludesMiscProduct(t *testing.T) {
	at := time.Now()
	latest := map[string]models.Snapshot{
		"LAC1": snap("LAC1", at, map[string]string{catalog.ProductIDMisc: "5", "cp001": "1"}),
	}

	sums := SumGroup(latest, catalog.ProductIDMisc)
	if _, ok := sums[catalog.ProductIDMisc]; ok {
		t.Error("the miscellaneous product must never be summed")
	}
	if sums["cp001"] != 1 {
		t.Errorf("expected cp001 -> 1, got %d", sums["cp001"])
	}
}

func TestSumGroupZeroIsAContribution(t *testing.T) {
	at := time.Now()
	latest := map[string]models.Snapshot{
		"LAC1": snap("LAC1", at, map[string]string{"cp001": "0"}),
	}

	sums := SumGroup(latest, catalog.ProductIDMisc)
	if v, ok := sums["cp001"]; !ok || v != 0 {
		t.Errorf("an explicit \"0\" is a valid contribution: got %d (present=%v)", v, ok)
	}
}

func TestSumGroupEmptyInput(t *testing.T) {
	sums := SumGroup(nil, catalog.ProductIDMisc)
	if len(sums) != 0 {
		t.Fatalf("expected empty sums, got %v", sums)
	}
}
