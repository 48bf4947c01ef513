package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// GetTableColumns retrieves the column definitions for a table in table order.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string `gorm:"column:dflt_value"`
			Pk         int
		}
		var sqliteCols []sqliteColumn
		err := db.Raw(`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, tableName).
			Scan(&sqliteCols).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field:   col.Name,
				Type:    strings.ToLower(col.Type),
				Default: col.DefaultVal,
			})
		}
		return columns, nil
	}

	if db.Dialector.Name() == "postgres" {
		err := db.Raw(`SELECT column_name AS field, data_type AS type, is_nullable AS "null", column_default AS "default"
			FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = ?
			ORDER BY ordinal_position`, tableName).Scan(&columns).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		return columns, nil
	}

	err := db.Raw("SHOW COLUMNS FROM " + quoteIdent(db, tableName)).Scan(&columns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// quoteIdent quotes a table or column name for the dialect of db.
func quoteIdent(db *gorm.DB, name string) string {
	if db.Dialector.Name() == "mysql" {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// OrderKey is a key column and the width its values are zero padded to
// before they are compared. Width 0 means no padding.
type OrderKey struct {
	Index int
	Width int
}

// orderExpr sorts column the way matching keys compare: as text, zero padded
// to width, byte by byte. NULL reads as an empty string.
func orderExpr(db *gorm.DB, column string, width int) string {
	dialect := db.Dialector.Name()

	castType, collation := "TEXT", "BINARY"
	switch dialect {
	case "mysql":
		castType, collation = "CHAR", "utf8mb4_bin"
	case "postgres":
		collation = `"C"`
	}
	text := fmt.Sprintf("COALESCE(CAST(%s AS %s), '')", column, castType)

	if width > 0 {
		padded := fmt.Sprintf("LPAD(%s, %d, '0')", text, width)
		length := "CHAR_LENGTH"
		if dialect == "sqlite" {
			padded = fmt.Sprintf("substr('%s' || %s, -%d)", strings.Repeat("0", width), text, width)
			length = "length"
		}
		text = fmt.Sprintf("CASE WHEN %s(%s) >= %d THEN %s ELSE %s END", length, text, width, text, padded)
	}
	return fmt.Sprintf("(%s) COLLATE %s", text, collation)
}

// TableQuery builds a SELECT over every column of tableName ordered by the
// key columns in the order matching keys compare, so the rows arrive sorted.
func TableQuery(db *gorm.DB, tableName string, keys []OrderKey) (string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("table %s not found or has no columns", tableName)
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = quoteIdent(db, c.Field)
	}

	order := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.Index < 0 || k.Index >= len(columns) {
			return "", fmt.Errorf("key column %d is out of range for table %s with %d columns", k.Index, tableName, len(columns))
		}
		order = append(order, orderExpr(db, names[k.Index], k.Width))
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quoteIdent(db, tableName))
	if len(order) > 0 {
		query += " ORDER BY " + strings.Join(order, ", ")
	}
	return query, nil
}
