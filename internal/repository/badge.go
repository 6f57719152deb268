package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
)

var ErrBadgeDuplicate = errors.New("BADGE_DUPLICATE")

type BadgeRepository interface {
	Create(ctx context.Context, badge *model.UserBadge) error
	ListByUser(ctx context.Context, userID string) ([]model.UserBadge, error)
}

type badge struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badge{db: db}
}

func (b *badge) Create(ctx context.Context, record *model.UserBadge) error {
	db := GetTx(ctx, b.db)
	err := db.Create(record).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrBadgeDuplicate
	}

	return err
}

func (b *badge) ListByUser(ctx context.Context, userID string) ([]model.UserBadge, error) {
	db := GetTx(ctx, b.db)

	var records []model.UserBadge
	err := db.Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
