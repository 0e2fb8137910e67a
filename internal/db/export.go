package db

import (
	"database/sql"
	"fmt"
	"strconv"
)

// ExportRow is one district of the ranked export: the mean of every metric
// over all of the district's reporting dates.
type ExportRow struct {
	District        string
	RiskScore       *float64
	BioRatio        *float64
	ChildPressure   *float64
	ElderlyPressure *float64
}

// ExportHeader matches the column names of the source dataset so the download
// round-trips against the file the table was loaded from.
var ExportHeader = []string{
	colDistrict, colRisk, colBioRatio, colChild, colElderly,
}

// RankedExport groups all rows by district, averages every metric, and orders
// by mean risk score descending. Unlike TopDistricts there is no limit: the
// export carries every district.
func (db *DB) RankedExport() ([]ExportRow, error) {
	rows, err := db.Query(`
		SELECT district,
		       AVG(risk_score), AVG(bio_ratio), AVG(child_pressure), AVG(elderly_pressure)
		FROM stress_records
		GROUP BY district
		ORDER BY ROUND(AVG(risk_score), 4) DESC, district`)
	if err != nil {
		return nil, fmt.Errorf("failed to build ranked export: %w", err)
	}
	defer rows.Close()

	var export []ExportRow
	for rows.Next() {
		var (
			row                       ExportRow
			risk, bio, child, elderly sql.NullFloat64
		)
		if err := rows.Scan(&row.District, &risk, &bio, &child, &elderly); err != nil {
			return nil, err
		}
		row.RiskScore = nullFloat(risk)
		row.BioRatio = nullFloat(bio)
		row.ChildPressure = nullFloat(child)
		row.ElderlyPressure = nullFloat(elderly)
		export = append(export, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return export, nil
}

// Fields renders the row for delimited output; absent means become empty
// cells, never zeroes.
func (r ExportRow) Fields() []string {
	return []string{
		r.District,
		formatMetric(r.RiskScore),
		formatMetric(r.BioRatio),
		formatMetric(r.ChildPressure),
		formatMetric(r.ElderlyPressure),
	}
}

func formatMetric(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
