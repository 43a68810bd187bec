package model

import (
	"encoding/json"
	"time"
)

// KVEntry is one persisted key-value document. The table is the server-side
// stand-in for the original client's namespaced local storage: one row per
// key, value JSON-encoded, last write wins.
type KVEntry struct {
	Key       string          `gorm:"primaryKey;size:100" json:"key"`
	Value     json.RawMessage `gorm:"type:json" json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
