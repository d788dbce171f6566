package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	tests := []struct {
		name          string
		dsn           string
		debug         bool
		expectedError bool
		errorContains string
	}{
		{name: "successful connection with memory database", dsn: ":memory:"},
		{name: "successful connection with debug enabled", dsn: ":memory:", debug: true},
		{name: "successful connection with file database", dsn: "/tmp/test_javarefactor.db"},
		{name: "connection with nested directory creation", dsn: "/tmp/nested/path/test_javarefactor.db"},
		{
			name: "connection with URL DSN (Turso)", dsn: "libsql://127.0.0.1:19999",
			expectedError: true, errorContains: "failed to connect",
		},
		{
			name: "connection with HTTPS URL", dsn: "https://127.0.0.1:19999/db",
			expectedError: true, errorContains: "failed to connect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !isURL(tt.dsn) && tt.dsn != ":memory:" {
				defer func() {
					if !tt.expectedError {
						os.Remove(tt.dsn)
						os.Remove(filepath.Dir(tt.dsn))
					}
				}()
			}

			db, err := Connect(tt.dsn, tt.debug)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, db)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, db)

			sqlDB, err := db.DB()
			require.NoError(t, err)
			require.NoError(t, sqlDB.Ping())

			var fkEnabled int
			require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fkEnabled).Error)
			assert.Equal(t, 1, fkEnabled)

			for _, table := range []string{"transactions", "fixes"} {
				assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
			}

			sqlDB.Close()
		})
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		expected bool
	}{
		{name: "HTTP URL", dsn: "http://example.com", expected: true},
		{name: "HTTPS URL", dsn: "https://example.com", expected: true},
		{name: "libsql URL", dsn: "libsql://test.turso.io", expected: true},
		{name: "file path", dsn: "/path/to/database.db", expected: false},
		{name: "relative file path", dsn: "database.db", expected: false},
		{name: "memory database", dsn: ":memory:", expected: false},
		{name: "empty string", dsn: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isURL(tt.dsn))
		})
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&TransactionRecord{}))
	assert.True(t, db.Migrator().HasTable(&FixRecord{}))
}

func TestConnectDirectoryCreation(t *testing.T) {
	tempDir := fmt.Sprintf("/tmp/javarefactor_test_%d", os.Getpid())
	dbPath := filepath.Join(tempDir, "nested", "deep", "test.db")
	defer os.RemoveAll(tempDir)

	db, err := Connect(dbPath, false)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.DirExists(t, filepath.Dir(dbPath))
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestConnectForeignKeyConstraintRejectsOrphanFix(t *testing.T) {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)

	orphan := &FixRecord{ID: "fix-orphan", TransactionID: "no-such-transaction", Kind: "replace"}
	err = db.Create(orphan).Error
	assert.Error(t, err, "should fail due to foreign key constraint")
}
