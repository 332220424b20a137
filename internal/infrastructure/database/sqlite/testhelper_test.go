package sqlite

import (
	"testing"

	"reminder-notifier/internal/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated in-memory database. A single connection keeps every
// query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(Options{URL: ":memory:", MaxOpenConns: 1}, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })
	return db
}
