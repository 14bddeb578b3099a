package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*domain.Contact) ([]*domain.Contact, error)
	GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.Contact, error)
	Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*domain.Contact, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Contact, error)
	SetFavorite(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, favorite bool) error
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*domain.Contact) ([]*domain.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(contacts) == 0 {
		return []*domain.Contact{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}

// GetByPhone returns the contact with this exact number, or nil when none
// exists.
func (cr *contactRepo) GetByPhone(ctx context.Context, tx *gorm.DB, phoneNumber string) (*domain.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result domain.Contact
	err := transaction.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Search matches query as a case-insensitive substring of either the name or
// the phone number.
func (cr *contactRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*domain.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if limit <= 0 {
		limit = 5
	}

	var results []*domain.Contact
	pattern := "%" + query + "%"
	if err := transaction.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(phone_number) LIKE LOWER(?)", pattern, pattern).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*domain.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if limit <= 0 {
		limit = 100
	}

	var results []*domain.Contact
	if err := transaction.WithContext(ctx).
		Order("is_favorite DESC").
		Order("name ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) SetFavorite(ctx context.Context, tx *gorm.DB, contactID uuid.UUID, favorite bool) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	res := transaction.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", contactID).
		Update("is_favorite", favorite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
