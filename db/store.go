package db

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Storage keys, one JSON-array blob per collection
const (
	KeyClientes   = "asistente_legal_clientes"
	KeyCasos      = "asistente_legal_casos"
	KeyDocumentos = "asistente_legal_documentos"
	KeyAlertas    = "asistente_legal_alertas"
)

// blob is one persisted collection, encoded as a JSON array
type blob struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

// TableName specifies the table name for the blob model
func (blob) TableName() string {
	return "blobs"
}

// Store is the local key-value store backing all collections.
// It is opened once at process start and injected into the services.
type Store struct {
	conn *gorm.DB
}

// Open sets up the store at the given path with WAL mode for concurrency
func Open(path string, environment string) (*Store, error) {
	// Determine log level based on environment
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	// Enable WAL mode for better concurrency support
	dsn := path + "?_journal_mode=WAL"

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := conn.AutoMigrate(&blob{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Store connection established (WAL mode enabled)")
	return &Store{conn: conn}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

func (s *Store) readRaw(key string) string {
	var b blob
	if err := s.conn.First(&b, "key = ?", key).Error; err != nil {
		return ""
	}
	return b.Value
}

func (s *Store) writeRaw(key, value string) error {
	b := blob{Key: key, Value: value}
	if err := s.conn.Clauses(clause.OnConflict{UpdateAll: true}).Create(&b).Error; err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// ReadCollection decodes the JSON array stored under key.
// A missing or unparseable blob reads as an empty collection; that is the
// normal contract for callers, not an error condition.
func ReadCollection[T any](s *Store, key string) []T {
	raw := s.readRaw(key)
	if raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// WriteCollection encodes items as a JSON array and persists the whole blob
func WriteCollection[T any](s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.writeRaw(key, string(data))
}
