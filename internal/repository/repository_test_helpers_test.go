package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Destination{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func createTestAccount(t *testing.T, repo AccountRepository, email, externalID, token string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Email:          email,
		AccountID:      externalID,
		AccountName:    "Test Account",
		AppSecretToken: token,
		Website:        "https://example.com",
	}
	if err := repo.Create(account); err != nil {
		t.Fatalf("create account %s: %v", email, err)
	}
	return account
}
