package db

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Column names expected in the merged dataset header. Extra columns are
// ignored so the file can carry raw transaction counts alongside the
// pre-computed indicators.
const (
	colState    = "state"
	colDistrict = "district"
	colDate     = "date"
	colRisk     = "service_stress_risk"
	colBioRatio = "biometric_to_enrolment_ratio"
	colChild    = "child_update_pressure"
	colElderly  = "elderly_update_pressure"
)

// dateLayouts lists the timestamp formats seen in dataset exports. Values are
// normalised to YYYY-MM-DD on insert so string ordering is date ordering.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadCSV reads the merged dataset and inserts one row per record. It must be
// called exactly once, before the database serves queries. Any malformed row
// aborts the load; the caller is expected to treat that as fatal.
func (db *DB) LoadCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colState, colDistrict, colDate, colRisk, colBioRatio, colChild, colElderly} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO stress_records (
			state, district, date, risk_score, bio_ratio, child_pressure, elderly_pressure
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}

		date, err := normaliseDate(field(record, cols[colDate]))
		if err != nil {
			return 0, fmt.Errorf("dataset line %d: %w", line, err)
		}

		risk, err := parseMetric(field(record, cols[colRisk]), colRisk, line)
		if err != nil {
			return 0, err
		}
		bio, err := parseMetric(field(record, cols[colBioRatio]), colBioRatio, line)
		if err != nil {
			return 0, err
		}
		child, err := parseMetric(field(record, cols[colChild]), colChild, line)
		if err != nil {
			return 0, err
		}
		elderly, err := parseMetric(field(record, cols[colElderly]), colElderly, line)
		if err != nil {
			return 0, err
		}

		_, err = stmt.Exec(
			field(record, cols[colState]),
			field(record, cols[colDistrict]),
			date, risk, bio, child, elderly,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert dataset line %d: %w", line, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit dataset load: %w", err)
	}
	return inserted, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func normaliseDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty date value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognised date value %q", raw)
}

// parseMetric maps an empty or NaN cell to NULL rather than zero; the
// distinction matters for averages and percentiles downstream.
func parseMetric(raw, column string, line int) (any, error) {
	if raw == "" || strings.EqualFold(raw, "nan") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("dataset line %d: bad %s value %q", line, column, raw)
	}
	return v, nil
}
