package models

import "time"

// StorageEntry is one key/value row in the snapshot store, the server-side
// analog of a browser local-storage slot. The event list lives in a single
// entry as a JSON array.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     []byte    `gorm:"type:longblob" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
