package repository

import (
	"github.com/jackc/pgx/v5"

	"linkup/internal/domain/projection"
)

// collectRows drains a result set into positional rows, preserving the
// column order of the query.
func collectRows(rows pgx.Rows) ([]projection.Row, error) {
	defer rows.Close()

	var out []projection.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, projection.Row(values))
	}
	return out, rows.Err()
}
