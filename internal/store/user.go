package store

import (
	"context"
	"errors"

	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
}

type UserStore struct {
	db *gorm.DB
}

// Make sure we conform to User interface
var _ User = (*UserStore)(nil)

func NewUserStore(db *gorm.DB) User {
	return &UserStore{db: db}
}

func (s *UserStore) getDB(ctx context.Context) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *UserStore) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user := model.User{ID: id}
	result := s.getDB(ctx).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user model.User) (*model.User, error) {
	result := s.getDB(ctx).Create(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &user, nil
}
