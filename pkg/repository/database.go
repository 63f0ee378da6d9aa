package repository

import (
	"fmt"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/config"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database owns the shared database handle. It is opened once at process
// start and passed explicitly to the stores that need it.
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection for the configured driver
// and migrates the schema.
func NewDatabase(cfg *config.Config) (*Database, error) {
	var logLevel logger.LogLevel
	if cfg.Debug {
		logLevel = logger.Info
	} else {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			cfg.Database.SSLMode,
		)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		// Pragmas ride in the DSN: they are per-connection in SQLite, so
		// every connection the pool opens must enable foreign keys (the
		// cascades depend on them) and queue on a busy database.
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=3000", cfg.Database.Path)
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	database, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	db := &Database{DB: database}

	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// migrate creates or updates the schema
func (d *Database) migrate() error {
	return d.DB.AutoMigrate(
		&models.Project{},
		&models.Tag{},
		&models.ProjectTag{},
		&models.CompanyPost{},
		&models.Comment{},
		&models.ContactMessage{},
		&models.User{},
	)
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health pings the database
func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
