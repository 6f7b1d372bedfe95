package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/observability"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account email or account_id already exists")
)

type AccountRepository interface {
	Create(account *domain.Account) error
	FindByID(id uint) (*domain.Account, error)
	// FindByToken resolves the account holding the given secret token.
	// The token column is not unique; ties resolve to the lowest id.
	FindByToken(token string) (*domain.Account, error)
	Update(account *domain.Account) error
	Delete(id uint) error
}

type GormAccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Create(account *domain.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			observability.RecordRepositoryOperation(context.Background(), "account", "create", "conflict")
			return ErrDuplicateAccount
		}
		observability.RecordRepositoryOperation(context.Background(), "account", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "account", "create", "success")
	return nil
}

func (r *GormAccountRepository) FindByID(id uint) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "account", "find_by_id", "not_found")
			return nil, ErrAccountNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "account", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "account", "find_by_id", "success")
	return &account, nil
}

func (r *GormAccountRepository) FindByToken(token string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.Where("app_secret_token = ?", token).Order("id asc").First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "account", "find_by_token", "not_found")
			return nil, ErrAccountNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "account", "find_by_token", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "account", "find_by_token", "success")
	return &account, nil
}

func (r *GormAccountRepository) Update(account *domain.Account) error {
	res := r.db.Model(&domain.Account{}).
		Where("id = ?", account.ID).
		Select("email", "account_id", "account_name", "app_secret_token", "website").
		Updates(domain.Account{
			Email:          account.Email,
			AccountID:      account.AccountID,
			AccountName:    account.AccountName,
			AppSecretToken: account.AppSecretToken,
			Website:        account.Website,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			observability.RecordRepositoryOperation(context.Background(), "account", "update", "conflict")
			return ErrDuplicateAccount
		}
		observability.RecordRepositoryOperation(context.Background(), "account", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "account", "update", "not_found")
		return ErrAccountNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "account", "update", "success")
	return nil
}

func (r *GormAccountRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Account{}, id)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "account", "delete", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "account", "delete", "not_found")
		return ErrAccountNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "account", "delete", "success")
	return nil
}
