package db

import (
	"database/sql"
	"fmt"
	"math"
)

// DistrictRisk is one row of a district ranking: the mean risk score over
// every date the district reported, NULL scores excluded from the mean.
type DistrictRisk struct {
	District    string  `json:"district"`
	AverageRisk float64 `json:"average_risk"`
}

// TopDistricts ranks all districts by mean risk score, descending. Districts
// whose every score is NULL sort last and are only returned when the limit
// exceeds the number of scored districts. Ordering compares the rounded mean,
// so ties at the served precision break on district name deterministically.
func (db *DB) TopDistricts(limit int) ([]DistrictRisk, error) {
	return db.rankDistricts(`
		SELECT district, AVG(risk_score) AS avg_risk
		FROM stress_records
		GROUP BY district
		ORDER BY ROUND(avg_risk, 4) DESC, district
		LIMIT ?`, limit)
}

// DistrictHotspots ranks the districts of a single state by mean risk score,
// descending. An unknown state yields an empty slice.
func (db *DB) DistrictHotspots(state string, limit int) ([]DistrictRisk, error) {
	return db.rankDistricts(`
		SELECT district, AVG(risk_score) AS avg_risk
		FROM stress_records
		WHERE state = ?
		GROUP BY district
		ORDER BY ROUND(avg_risk, 4) DESC, district
		LIMIT ?`, state, limit)
}

func (db *DB) rankDistricts(query string, args ...any) ([]DistrictRisk, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank districts: %w", err)
	}
	defer rows.Close()

	ranked := []DistrictRisk{}
	for rows.Next() {
		var (
			district string
			avg      sql.NullFloat64
		)
		if err := rows.Scan(&district, &avg); err != nil {
			return nil, err
		}
		ranked = append(ranked, DistrictRisk{
			District:    district,
			AverageRisk: round4(avg.Float64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ranked, nil
}

// TrendPoint is one step of a district's risk time series.
type TrendPoint struct {
	Date      string   `json:"date"`
	RiskScore *float64 `json:"risk_score"`
}

// Trend returns every row for a (state, district) pair in ascending date
// order, or ErrNotFound when the pair has no rows at all.
func (db *DB) Trend(state, district string) ([]TrendPoint, error) {
	rows, err := db.Query(`
		SELECT date, risk_score
		FROM stress_records
		WHERE state = ? AND district = ?
		ORDER BY date, rowid`,
		state, district,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend: %w", err)
	}
	defer rows.Close()

	var trend []TrendPoint
	for rows.Next() {
		var (
			date  string
			score sql.NullFloat64
		)
		if err := rows.Scan(&date, &score); err != nil {
			return nil, err
		}
		trend = append(trend, TrendPoint{Date: date, RiskScore: nullFloat(score)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(trend) == 0 {
		return nil, ErrNotFound
	}
	return trend, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
