package database

import (
	"context"
	"fmt"
)

// exportTables lists the tables included in workbook exports, in sheet order.
var exportTables = []string{
	"users", "clients", "cars", "bookings", "maintenance",
	"payments", "backups", "points", "hijacking", "comments",
}

// TableNames returns the tables available for export.
func (db *DB) TableNames(ctx context.Context) ([]string, error) {
	names := make([]string, len(exportTables))
	copy(names, exportTables)
	return names, nil
}

// TableData returns all rows of a table as column-keyed maps, plus the column order.
func (db *DB) TableData(ctx context.Context, tableName string) ([]map[string]any, []string, error) {
	known := false
	for _, t := range exportTables {
		if t == tableName {
			known = true
			break
		}
	}
	if !known {
		return nil, nil, fmt.Errorf("unknown table %q", tableName)
	}

	rows, err := db.QueryContext(ctx, `SELECT * FROM `+tableName)
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns %s: %w", tableName, err)
	}

	var data []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", tableName, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			v := values[i]
			// SQLite hands TEXT back as []byte; export wants strings.
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		data = append(data, row)
	}
	return data, columns, rows.Err()
}
