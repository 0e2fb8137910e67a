package db

import (
	"database/sql"
	"fmt"
)

// Record is one (state, district, date) row of the dataset. Metric pointers
// are nil where the source data had no value.
type Record struct {
	State           string   `json:"state"`
	District        string   `json:"district"`
	Date            string   `json:"date"`
	RiskScore       *float64 `json:"risk_score"`
	BioRatio        *float64 `json:"bio_ratio"`
	ChildPressure   *float64 `json:"child_pressure"`
	ElderlyPressure *float64 `json:"elderly_pressure"`
}

// Lookup returns the record for an exact (state, district, date) triple, or
// ErrNotFound. Duplicate keys are not rejected at load time; the first row in
// load order wins.
func (db *DB) Lookup(state, district, date string) (*Record, error) {
	var (
		rec                       Record
		risk, bio, child, elderly sql.NullFloat64
	)
	err := db.QueryRow(`
		SELECT state, district, date, risk_score, bio_ratio, child_pressure, elderly_pressure
		FROM stress_records
		WHERE state = ? AND district = ? AND date = ?
		ORDER BY rowid
		LIMIT 1`,
		state, district, date,
	).Scan(&rec.State, &rec.District, &rec.Date, &risk, &bio, &child, &elderly)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}

	rec.RiskScore = nullFloat(risk)
	rec.BioRatio = nullFloat(bio)
	rec.ChildPressure = nullFloat(child)
	rec.ElderlyPressure = nullFloat(elderly)
	return &rec, nil
}

// DateCohort holds the risk scores of every row reporting on one date, across
// all geographies. Total counts rows with a NULL score as well: the original
// percentile divides by the full cohort size.
type DateCohort struct {
	Total  int
	Scores []float64
}

// CohortForDate collects the risk scores of all rows sharing a date.
func (db *DB) CohortForDate(date string) (*DateCohort, error) {
	rows, err := db.Query(`SELECT risk_score FROM stress_records WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query date cohort: %w", err)
	}
	defer rows.Close()

	cohort := &DateCohort{}
	for rows.Next() {
		var score sql.NullFloat64
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		cohort.Total++
		if score.Valid {
			cohort.Scores = append(cohort.Scores, score.Float64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cohort, nil
}
