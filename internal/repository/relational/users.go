package relational

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

// CreateUser inserts a user. A duplicate email yields a conflict error.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Conflictf("User already exists")
	}
	if err != nil {
		return models.Storage("insert user", err)
	}
	return nil
}

// FindUserByEmail loads the user registered with email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, models.NotFoundf("no user with email %s", email)
	}
	if err != nil {
		return models.User{}, models.Storage("load user", err)
	}
	return user, nil
}
