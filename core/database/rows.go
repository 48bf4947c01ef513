package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"csvdiff/core/utils"

	"gorm.io/gorm"
)

// QueryRows streams the result of a query as string rows. Rewinding closes
// the cursor; the next read runs the query again.
type QueryRows struct {
	ctx   context.Context
	db    *gorm.DB
	query string
	args  []any

	rows    *sql.Rows
	columns []string
	done    bool
}

// NewQueryRows prepares query for reading. Nothing runs until the first Next.
func NewQueryRows(ctx context.Context, db *gorm.DB, query string, args ...any) *QueryRows {
	return &QueryRows{ctx: ctx, db: db, query: query, args: args}
}

func (q *QueryRows) open() error {
	rows, err := q.db.WithContext(q.ctx).Raw(q.query, q.args...).Rows()
	if err != nil {
		return fmt.Errorf("failed to run query: %w", err)
	}
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return fmt.Errorf("failed to read result columns: %w", err)
	}
	q.rows = rows
	q.columns = columns
	return nil
}

// Next returns the next result row, or io.EOF. NULL becomes an empty string.
func (q *QueryRows) Next() ([]string, error) {
	if q.done {
		return nil, io.EOF
	}
	if q.rows == nil {
		if err := q.open(); err != nil {
			return nil, err
		}
	}

	if !q.rows.Next() {
		err := q.rows.Err()
		q.rows.Close()
		q.rows = nil
		q.done = true
		if err != nil {
			return nil, fmt.Errorf("failed to iterate result: %w", err)
		}
		return nil, io.EOF
	}

	values := make([]any, len(q.columns))
	ptrs := make([]any, len(q.columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := q.rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	row := make([]string, len(values))
	for i, v := range values {
		row[i] = cell(v)
	}
	return row, nil
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format(time.DateTime)
	default:
		return utils.ToString(v)
	}
}

// Rewind closes the current cursor so the query runs again on the next read.
func (q *QueryRows) Rewind() error {
	q.done = false
	return q.Close()
}

// Columns returns the result column names once the query has run.
func (q *QueryRows) Columns() []string { return q.columns }

// Close releases the cursor, if any.
func (q *QueryRows) Close() error {
	if q.rows == nil {
		return nil
	}
	err := q.rows.Close()
	q.rows = nil
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("failed to close result: %w", err)
	}
	return nil
}
