package entity

import (
	"time"
)

// KeyValue - Penyimpanan key-value lokal (mis. "favorites")
type KeyValue struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"` // JSON payload
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KeyValue) TableName() string {
	return "key_values"
}
