package repository

import (
	"context"
	"errors"

	"github.com/evandrarf/wordbook-be/internal/entity"
	"gorm.io/gorm"
)

type (
	KeyValueRepository interface {
		// Get returns found=false when the key has never been written.
		Get(ctx context.Context, key string) (value string, found bool, err error)
		Set(ctx context.Context, key string, value string) error
	}

	keyValueRepository struct {
		db *gorm.DB
	}
)

func NewKeyValueRepository(db *gorm.DB) KeyValueRepository {
	return &keyValueRepository{db: db}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var kv entity.KeyValue
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return kv.Value, true, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key string, value string) error {
	// Upsert: update if exists, create if not
	kv := entity.KeyValue{Key: key}
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Assign(entity.KeyValue{Value: value}).
		FirstOrCreate(&kv).Error
}
