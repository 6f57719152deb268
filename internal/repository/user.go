package repository

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByIDForUpdate takes an exclusive row lock on the user. Must run
	// inside WithTx; the lock is held until the transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*model.User, error)
	UpdatePoints(ctx context.Context, id string, points int64) error
	Count(ctx context.Context) (int64, error)
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (u *user) GetByID(ctx context.Context, id string) (*model.User, error) {
	db := GetTx(ctx, u.db)

	var record model.User
	err := db.Where("id = ?", id).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *user) GetByIDForUpdate(ctx context.Context, id string) (*model.User, error) {
	db := GetTx(ctx, u.db)

	var record model.User
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

func (u *user) UpdatePoints(ctx context.Context, id string, points int64) error {
	db := GetTx(ctx, u.db)

	return db.Model(&model.User{}).
		Where("id = ?", id).
		Update("points", points).Error
}

func (u *user) Count(ctx context.Context) (int64, error) {
	var count int64
	err := u.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
