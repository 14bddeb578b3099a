package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/domain"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type ContactService interface {
	List(ctx context.Context, query string, limit int) ([]*domain.Contact, error)
	Create(ctx context.Context, name, phoneNumber string, favorite bool) (*domain.Contact, error)
	SetFavorite(ctx context.Context, contactID uuid.UUID, favorite bool) error
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, baseLog *logger.Logger, contactRepo repos.ContactRepo) ContactService {
	return &contactService{
		db:          db,
		log:         baseLog.With("service", "ContactService"),
		contactRepo: contactRepo,
	}
}

func (cs *contactService) List(ctx context.Context, query string, limit int) ([]*domain.Contact, error) {
	query = strings.TrimSpace(query)
	if query != "" {
		return cs.contactRepo.Search(ctx, nil, query, limit)
	}
	return cs.contactRepo.List(ctx, nil, limit)
}

func (cs *contactService) Create(ctx context.Context, name, phoneNumber string, favorite bool) (*domain.Contact, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" || phoneNumber == "" {
		return nil, fmt.Errorf("name and phone_number are required")
	}

	contact := &domain.Contact{
		Name:        name,
		PhoneNumber: phoneNumber,
		IsFavorite:  favorite,
		Source:      domain.ContactSourceManual,
	}
	created, err := cs.contactRepo.Create(ctx, nil, []*domain.Contact{contact})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (cs *contactService) SetFavorite(ctx context.Context, contactID uuid.UUID, favorite bool) error {
	return cs.contactRepo.SetFavorite(ctx, nil, contactID, favorite)
}
