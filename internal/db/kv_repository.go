package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// KVRepository persists every record store as a named key holding a
// JSON-serialized value, mirroring the flat key-value namespace the
// stores expect.
type KVRepository struct {
	database *gorm.DB
}

func NewKVRepository(database *gorm.DB) *KVRepository {
	return &KVRepository{database: database}
}

func (repo *KVRepository) Get(key string) (string, bool, error) {
	entry := KVEntry{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (repo *KVRepository) Put(key string, value string) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *KVRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&KVEntry{}).Error
}

func (repo *KVRepository) Keys() ([]string, error) {
	keys := make([]string, 0)
	if err := repo.database.Model(&KVEntry{}).Order("key ASC").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
