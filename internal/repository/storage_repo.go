package repository

import (
	"errors"
	"sync"

	"connected/internal/models"

	"gorm.io/gorm"
)

// SnapshotKV is the local-storage analog: raw bytes under string keys. The
// event snapshot is one value; readers must treat a missing key as empty, not
// as an error.
type SnapshotKV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// StorageRepository persists snapshot entries in MySQL, one row per key.
type StorageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

func (r *StorageRepository) Get(key string) ([]byte, bool, error) {
	var entry models.StorageEntry
	err := r.db.Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (r *StorageRepository) Set(key string, value []byte) error {
	return r.db.Save(&models.StorageEntry{Key: key, Value: value}).Error
}

// MemoryKV backs the snapshot store when no DSN is configured and in tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}
