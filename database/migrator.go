package database

import (
	"github.com/evandrarf/wordbook-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.KeyValue{},
	)
	return err
}
