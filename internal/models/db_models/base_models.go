package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel uses application-assigned monotonically increasing integer ids
// handed out by the shared counter (see repositories.Sequence) rather than a
// database-native key, so the memory and postgres backends agree on layout.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// Counter backs the shared id sequence, one row per entity collection.
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value uint   `gorm:"not null"`
}
