package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type stateRecord struct {
	Key       string `gorm:"primaryKey;column:state_key"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (stateRecord) TableName() string {
	return "local_state"
}

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var rec stateRecord
	err := r.db.WithContext(ctx).Where("state_key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("load %q: %w", key, err)
	}

	return rec.Value, nil
}

func (r *StateRepository) Save(ctx context.Context, key string, value []byte) error {
	return upsert(r.db.WithContext(ctx), key, value)
}

// SaveMany writes every entry in one transaction.
func (r *StateRepository) SaveMany(ctx context.Context, entries map[string][]byte) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			if err := upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, key string, value []byte) error {
	rec := stateRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}

	return nil
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("state_key = ?", key).Delete(&stateRecord{}).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}

	return nil
}
