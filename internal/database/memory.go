package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"socialposts/internal/config"
)

// OpenMemory opens a migrated, private in-memory SQLite database.
// It backs the repository and HTTP tests.
func OpenMemory() (*gorm.DB, error) {
	db, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
