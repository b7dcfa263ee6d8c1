package db

import (
	_ "embed"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB represents our sqlite3 database file.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// Open returns a connection to a migrated sqlite3 database file on disk,
// creating the file and running migrations if necessary. The schema uses
// "create table if not exists" throughout, so opening an already-populated
// database is safe.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("error getting connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("error closing db: %w", err)
	}
	return nil
}

// Tx runs fn inside a single transaction; everything fn writes is committed
// together when it returns nil, and rolled back when it returns an error.
func (db *DB) Tx(fn func(tx *DB) error) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return fn(&DB{tx})
	})
}
