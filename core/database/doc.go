// Package database reads diff inputs from a SQL database.
//
// Connect opens MySQL, PostgreSQL or SQLite through GORM. QueryRows turns a query result
// into a rewindable row producer, so a query can stand in for a CSV file on
// either side of a diff. The query must return rows ordered by the matching
// key, the same way a CSV input must be sorted.
//
// TableQuery uses the schema inspector to build an ordered SELECT over a
// whole table, given the key columns and their padding widths. It orders by
// the zero padded text of each key under a binary collation, which is how
// matching keys compare, rather than by the column's native type.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	rows := database.NewQueryRows(ctx, db, "SELECT id, name FROM items ORDER BY id")
//	defer rows.Close()
//	row, err := rows.Next()
package database
