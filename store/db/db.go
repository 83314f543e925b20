package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectPostgres = "postgres"
	DialectSqlite   = "sqlite"
)

// Config database config
type Config struct {
	Dialect  string `json:"dialect"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"ssl_mode"`
	Debug    bool   `json:"debug"`
}

// DB gorm db wrapper
type DB struct {
	write *gorm.DB
	read  *gorm.DB
}

// New wrap a gorm db
func New(db *gorm.DB) *DB {
	return &DB{
		write: db,
		read:  db,
	}
}

// Open open database
func Open(cfg Config) (*DB, error) {
	var dialector gorm.Dialector

	switch cfg.Dialect {
	case DialectSqlite:
		dialector = sqlite.Open(cfg.Database)
	case DialectPostgres, "":
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}

		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslmode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
	}

	gcfg := &gorm.Config{}
	if !cfg.Debug {
		gcfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, err
	}

	if cfg.Debug {
		db = db.Debug()
	}

	return New(db), nil
}

// MustOpen open database, panic on error
func MustOpen(cfg Config) *DB {
	db, err := Open(cfg)
	if err != nil {
		panic(err)
	}

	return db
}

// Update db for writing
func (db *DB) Update() *gorm.DB {
	return db.write
}

// View db for reading
func (db *DB) View() *gorm.DB {
	return db.read
}

// PingContext verify the connection is alive
func (db *DB) PingContext(ctx context.Context) error {
	sqlDB, err := db.write.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close close the underlying connections
func (db *DB) Close() error {
	sqlDB, err := db.write.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

var (
	migrateMux sync.Mutex
	migrations []func(db *DB) error
)

// RegisterMigrate register a table migration, called from store packages' init
func RegisterMigrate(fn func(db *DB) error) {
	migrateMux.Lock()
	defer migrateMux.Unlock()

	migrations = append(migrations, fn)
}

// Migrate run all registered migrations
func Migrate(db *DB) error {
	migrateMux.Lock()
	defer migrateMux.Unlock()

	for _, fn := range migrations {
		if err := fn(db); err != nil {
			return err
		}
	}

	return nil
}
