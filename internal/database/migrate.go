package database

import (
	"github.com/CodeWithNeha/Data-Pusher/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Account{},
		&domain.Destination{},
	)
}
