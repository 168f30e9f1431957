package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// StorageRecord - строка key-value таблицы.
type StorageRecord struct {
	Key   string         `gorm:"primaryKey;column:key"`
	Value datatypes.JSON `gorm:"column:value"`
}

func (StorageRecord) TableName() string {
	return "storage_records"
}

// GormStore - реализация Store поверх GORM и локального SQLite-файла.
type GormStore struct {
	db *gorm.DB
}

// Open открывает (или создает) локальное хранилище по указанному пути.
func Open(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store at %s: %w", path, err)
	}
	return NewGormStore(db)
}

// NewGormStore оборачивает существующее соединение (используется в тестах).
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&StorageRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage records: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, error) {
	var rec StorageRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (s *GormStore) Put(key string, value []byte) error {
	rec := StorageRecord{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *GormStore) Delete(key string) error {
	return s.db.Delete(&StorageRecord{}, "key = ?", key).Error
}

func (s *GormStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.Model(&StorageRecord{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
