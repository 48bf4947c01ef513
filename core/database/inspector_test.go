package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	require.NoError(t, err)
	return db
}

func TestGetTableColumns(t *testing.T) {
	db := setupSQLite(t)

	columns, err := GetTableColumns(db, "test_items")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "integer", columns[0].Type)
	assert.Equal(t, "name", columns[1].Field)
	assert.Equal(t, "text", columns[2].Type)

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumnsQuotedNames(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Exec(`CREATE TABLE "it's ""odd""" (id INTEGER, name TEXT)`).Error)

	columns, err := GetTableColumns(db, `it's "odd"`)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)

	query, err := TableQuery(db, `it's "odd"`, []OrderKey{{Index: 0}})
	require.NoError(t, err)
	assert.Contains(t, query, `FROM "it's ""odd"""`)
	assert.NoError(t, db.Exec(query).Error)
}

func TestGetTableColumnsMySQLQuoting(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `we``ird`")).
		WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "INT", "NO", "PRI", nil, "").
			AddRow("name", "VARCHAR(20)", "YES", "", nil, ""))

	query, err := TableQuery(db, "we`ird", []OrderKey{{Index: 0, Width: 8}})
	require.NoError(t, err)

	key := "COALESCE(CAST(`id` AS CHAR), '')"
	assert.Equal(t, "SELECT `id`, `name` FROM `we``ird` ORDER BY (CASE WHEN CHAR_LENGTH("+key+") >= 8 THEN "+key+
		" ELSE LPAD("+key+", 8, '0') END) COLLATE utf8mb4_bin", query)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableQuery(t *testing.T) {
	db := setupSQLite(t)

	t.Run("OrderedByKeyColumns", func(t *testing.T) {
		query, err := TableQuery(db, "test_items", []OrderKey{{Index: 1}, {Index: 0}})
		require.NoError(t, err)
		assert.Equal(t, `SELECT "id", "name", "description" FROM "test_items" ORDER BY `+
			`(COALESCE(CAST("name" AS TEXT), '')) COLLATE BINARY, (COALESCE(CAST("id" AS TEXT), '')) COLLATE BINARY`, query)
	})

	t.Run("KeyOutOfRange", func(t *testing.T) {
		_, err := TableQuery(db, "test_items", []OrderKey{{Index: 3}})
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("MissingTable", func(t *testing.T) {
		_, err := TableQuery(db, "non_existent", []OrderKey{{Index: 0}})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestTableQueryKeyOrder(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE items (id INTEGER, name TEXT)").Error)
	require.NoError(t, db.Exec("INSERT INTO items VALUES (2, 'b'), (10, 'B'), (1, 'a'), (NULL, 'z')").Error)

	tests := []struct {
		name string
		keys []OrderKey
		want []string
	}{
		{"Text order of integers", []OrderKey{{Index: 0}}, []string{"", "1", "10", "2"}},
		{"Zero padded integers", []OrderKey{{Index: 0, Width: 2}}, []string{"", "1", "2", "10"}},
		{"Binary order of text", []OrderKey{{Index: 1}}, []string{"10", "1", "2", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := TableQuery(db, "items", tt.keys)
			require.NoError(t, err)

			var ids []string
			for _, row := range drainRows(t, NewQueryRows(context.Background(), db, query)) {
				ids = append(ids, row[0])
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
