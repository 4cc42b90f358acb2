package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/aadhya/eduverse/config"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb() error
	DropAll() error
	// SeedCatalog inserts the sample catalogue into an empty store
	SeedCatalog(ctx context.Context) (bool, error)
	// TableCounts reports the row count of every entity table
	TableCounts(ctx context.Context) (map[string]int64, error)
}
