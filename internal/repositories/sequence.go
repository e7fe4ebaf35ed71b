package repositories

import (
	"context"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "tiffinbox/internal/models/db_models"
)

// Sequence hands out application-assigned monotonically increasing ids, one
// counter per entity collection, independent of any database-native key.
type Sequence interface {
	Next(ctx context.Context, name string) (uint, error)
}

type gormSequence struct {
	db *gorm.DB
}

func NewSequence(db *gorm.DB) Sequence {
	return &gormSequence{db: db}
}

func (s *gormSequence) Next(ctx context.Context, name string) (uint, error) {
	var next uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter dbm.Counter
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&counter).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			counter = dbm.Counter{Name: name, Value: 0}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		}
		counter.Value++
		next = counter.Value
		return tx.Save(&counter).Error
	})
	return next, err
}

type MemorySequence struct {
	mu       sync.Mutex
	counters map[string]uint
}

func NewMemorySequence() *MemorySequence {
	return &MemorySequence{counters: make(map[string]uint)}
}

func (s *MemorySequence) Next(ctx context.Context, name string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name]++
	return s.counters[name], nil
}
