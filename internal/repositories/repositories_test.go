package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialposts/internal/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
