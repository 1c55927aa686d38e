package storage

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bellezamay-cart/logger"
	"bellezamay-cart/models"
)

// CartSnapshot is the durable row backing one session's cart: a single JSON
// blob per key, overwritten wholesale on every save.
type CartSnapshot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GormStore struct {
	DB  *gorm.DB
	Log *logger.Logger
}

func NewGormStore(db *gorm.DB, log *logger.Logger) *GormStore {
	return &GormStore{DB: db, Log: log}
}

func (s *GormStore) Load(ctx context.Context, key string) (models.Cart, error) {
	var row CartSnapshot
	err := s.DB.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, nil
		}
		return models.Cart{}, err
	}

	cart, ok := decodeSnapshot([]byte(row.Data))
	if !ok {
		// Unparsable snapshots are treated as absent, same as the old
		// localStorage behavior.
		s.Log.Debug("discarding malformed cart snapshot", zap.String("key", key))
		return models.Cart{}, nil
	}
	return cart, nil
}

func (s *GormStore) Save(ctx context.Context, key string, cart models.Cart) error {
	data, err := encodeSnapshot(cart)
	if err != nil {
		return err
	}

	row := CartSnapshot{Key: key, Data: string(data)}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}
