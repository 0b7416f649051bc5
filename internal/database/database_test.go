package database_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialposts/internal/config"
	"socialposts/internal/database"
	"socialposts/internal/models"
)

func TestOpenMemory_MigratesSchema(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	for _, model := range []interface{}{&models.User{}, &models.Profile{}, &models.Post{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestOpenMemory_IsolatedPerCall(t *testing.T) {
	first, err := database.OpenMemory()
	require.NoError(t, err)
	second, err := database.OpenMemory()
	require.NoError(t, err)

	require.NoError(t, first.Create(&models.User{Email: "a@x.com", Password: "hash"}).Error)

	var count int64
	require.NoError(t, second.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestOpen_LogsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}, zerolog.New(&buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))
	buf.Reset()

	var user models.User
	err = db.First(&user, 42).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not logged")

	err = db.Exec("SELECT * FROM missing_table").Error
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), "missing_table")
	assert.NotContains(t, buf.String(), `\u001b[`, "output is not colored")
}
