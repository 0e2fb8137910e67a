package db

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopDistricts(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	ranked, err := db.TopDistricts(3)
	if err != nil {
		t.Fatalf("TopDistricts failed: %v", err)
	}

	// Amritsar and Ernakulam tie at 0.03; the tie breaks on district name.
	want := []DistrictRisk{
		{District: "Amritsar", AverageRisk: 0.03},
		{District: "Ernakulam", AverageRisk: 0.03},
		{District: "Kollam", AverageRisk: 0.02},
	}
	if diff := cmp.Diff(want, ranked); diff != "" {
		t.Errorf("TopDistricts mismatch (-want +got):\n%s", diff)
	}
}

func TestTopDistricts_NullAveragesSortLast(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	ranked, err := db.TopDistricts(10)
	if err != nil {
		t.Fatalf("TopDistricts failed: %v", err)
	}
	if len(ranked) != 4 {
		t.Fatalf("TopDistricts returned %d rows, want 4", len(ranked))
	}
	if ranked[3].District != "Ludhiana" {
		t.Errorf("last district = %q, want Ludhiana (all scores NULL)", ranked[3].District)
	}
}

func TestTopDistricts_RoundsToFourDecimals(t *testing.T) {
	db := newTestDB(t)
	csv := `state,district,date,service_stress_risk,biometric_to_enrolment_ratio,child_update_pressure,elderly_update_pressure
Kerala,Kollam,2025-03-01,0.0123456,3.0,0.02,0.02
`
	if _, err := db.LoadCSV(strings.NewReader(csv)); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	ranked, err := db.TopDistricts(1)
	if err != nil {
		t.Fatalf("TopDistricts failed: %v", err)
	}
	if ranked[0].AverageRisk != 0.0123 {
		t.Errorf("AverageRisk = %v, want 0.0123", ranked[0].AverageRisk)
	}
}

func TestDistrictHotspots(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	ranked, err := db.DistrictHotspots("Kerala", 5)
	if err != nil {
		t.Fatalf("DistrictHotspots failed: %v", err)
	}
	want := []DistrictRisk{
		{District: "Ernakulam", AverageRisk: 0.03},
		{District: "Kollam", AverageRisk: 0.02},
	}
	if diff := cmp.Diff(want, ranked); diff != "" {
		t.Errorf("DistrictHotspots mismatch (-want +got):\n%s", diff)
	}
}

func TestDistrictHotspots_UnknownState(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	ranked, err := db.DistrictHotspots("Sikkim", 5)
	if err != nil {
		t.Fatalf("DistrictHotspots failed: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("DistrictHotspots = %v, want empty", ranked)
	}
}

func TestTrend(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	trend, err := db.Trend("Kerala", "Ernakulam")
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if len(trend) != 2 {
		t.Fatalf("Trend returned %d points, want 2", len(trend))
	}
	if trend[0].Date != "2025-03-01" || trend[1].Date != "2025-03-02" {
		t.Errorf("Trend dates = %q, %q, want ascending order", trend[0].Date, trend[1].Date)
	}
	if trend[0].RiskScore == nil || *trend[0].RiskScore != 0.05 {
		t.Errorf("first RiskScore = %v, want 0.05", trend[0].RiskScore)
	}
}

func TestTrend_NullScore(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	trend, err := db.Trend("Punjab", "Ludhiana")
	if err != nil {
		t.Fatalf("Trend failed: %v", err)
	}
	if len(trend) != 1 || trend[0].RiskScore != nil {
		t.Errorf("Trend = %+v, want one point with nil score", trend)
	}
}

func TestTrend_NotFound(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	if _, err := db.Trend("Kerala", "Idukki"); err != ErrNotFound {
		t.Errorf("Trend error = %v, want ErrNotFound", err)
	}
}

func TestRankedExport(t *testing.T) {
	db := newTestDB(t)
	loadFixture(t, db)

	export, err := db.RankedExport()
	if err != nil {
		t.Fatalf("RankedExport failed: %v", err)
	}

	// One row per distinct district, risk-ranked, NULL average last.
	if len(export) != 4 {
		t.Fatalf("RankedExport returned %d rows, want 4", len(export))
	}
	if export[0].District != "Amritsar" || export[3].District != "Ludhiana" {
		t.Errorf("export order = %q ... %q, want Amritsar first, Ludhiana last",
			export[0].District, export[3].District)
	}

	// Mean of every metric, not just risk: Ernakulam bio ratio is (9+4)/2.
	var ernakulam *ExportRow
	for i := range export {
		if export[i].District == "Ernakulam" {
			ernakulam = &export[i]
		}
	}
	if ernakulam == nil {
		t.Fatal("Ernakulam missing from export")
	}
	if ernakulam.BioRatio == nil || *ernakulam.BioRatio != 6.5 {
		t.Errorf("Ernakulam BioRatio = %v, want 6.5", ernakulam.BioRatio)
	}

	// A district with no scores exports an empty risk cell, not a zero.
	fields := export[3].Fields()
	if fields[1] != "" {
		t.Errorf("Ludhiana risk cell = %q, want empty", fields[1])
	}
}

func TestRankedExport_Empty(t *testing.T) {
	db := newTestDB(t)
	export, err := db.RankedExport()
	if err != nil {
		t.Fatalf("RankedExport failed: %v", err)
	}
	if len(export) != 0 {
		t.Errorf("RankedExport on empty table = %v, want empty", export)
	}
}
