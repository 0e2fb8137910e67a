package db

import "fmt"

// States returns the distinct state names in ascending order.
func (db *DB) States() ([]string, error) {
	return db.distinctStrings(`SELECT DISTINCT state FROM stress_records ORDER BY state`)
}

// Districts returns the distinct districts of a state in ascending order.
// An unknown state yields an empty slice, not an error.
func (db *DB) Districts(state string) ([]string, error) {
	return db.distinctStrings(`SELECT DISTINCT district FROM stress_records WHERE state = ? ORDER BY district`, state)
}

// Dates returns the distinct reporting dates for a (state, district) pair in
// ascending order, formatted YYYY-MM-DD.
func (db *DB) Dates(state, district string) ([]string, error) {
	return db.distinctStrings(
		`SELECT DISTINCT date FROM stress_records WHERE state = ? AND district = ? ORDER BY date`,
		state, district,
	)
}

func (db *DB) distinctStrings(query string, args ...any) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct values: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
