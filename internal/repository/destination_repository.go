package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/observability"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationRepository interface {
	Create(destination *domain.Destination) error
	// FindByID is scoped: the destination must belong to the given account,
	// a matching id under another account is not found.
	FindByID(accountID, id uint) (*domain.Destination, error)
	ListByAccount(accountID uint) ([]domain.Destination, error)
	Update(destination *domain.Destination) error
	Delete(accountID, id uint) error
}

type GormDestinationRepository struct{ db *gorm.DB }

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &GormDestinationRepository{db: db}
}

func (r *GormDestinationRepository) Create(destination *domain.Destination) error {
	if err := r.db.Create(destination).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "destination", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "destination", "create", "success")
	return nil
}

func (r *GormDestinationRepository) FindByID(accountID, id uint) (*domain.Destination, error) {
	var destination domain.Destination
	err := r.db.Where("id = ? AND account_id = ?", id, accountID).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "destination", "find_scoped", "not_found")
			return nil, ErrDestinationNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "destination", "find_scoped", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "destination", "find_scoped", "success")
	return &destination, nil
}

func (r *GormDestinationRepository) ListByAccount(accountID uint) ([]domain.Destination, error) {
	var destinations []domain.Destination
	err := r.db.Where("account_id = ?", accountID).Order("id asc").Find(&destinations).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "destination", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "destination", "list", "success")
	return destinations, nil
}

func (r *GormDestinationRepository) Update(destination *domain.Destination) error {
	res := r.db.Model(&domain.Destination{}).
		Where("id = ? AND account_id = ?", destination.ID, destination.AccountID).
		Select("url", "http_method", "headers").
		Updates(domain.Destination{
			URL:        destination.URL,
			HTTPMethod: destination.HTTPMethod,
			Headers:    destination.Headers,
		})
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "destination", "update", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "destination", "update", "not_found")
		return ErrDestinationNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "destination", "update", "success")
	return nil
}

func (r *GormDestinationRepository) Delete(accountID, id uint) error {
	res := r.db.Where("id = ? AND account_id = ?", id, accountID).Delete(&domain.Destination{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "destination", "delete", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), "destination", "delete", "not_found")
		return ErrDestinationNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), "destination", "delete", "success")
	return nil
}
