package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository stores diary owners and their timezone and goal settings.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID returns domain.ErrNotFound for unknown users.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Limit(1).
		Count(&found).Error
	if err != nil {
		return false, err
	}
	return found > 0, nil
}
