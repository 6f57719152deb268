package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
)

var ErrCollectionDuplicate = errors.New("COLLECTION_DUPLICATE")

type CollectionRepository interface {
	Create(ctx context.Context, entry *model.CollectionEntry) error
	Exists(ctx context.Context, userID, creatureID string) (bool, error)
	ListCreatureIDs(ctx context.Context, userID string) ([]string, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type collection struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collection{db: db}
}

func (c *collection) Create(ctx context.Context, entry *model.CollectionEntry) error {
	db := GetTx(ctx, c.db)
	err := db.Create(entry).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrCollectionDuplicate
	}

	return err
}

func (c *collection) Exists(ctx context.Context, userID, creatureID string) (bool, error) {
	db := GetTx(ctx, c.db)

	var count int64
	err := db.Model(&model.CollectionEntry{}).
		Where("user_id = ? AND creature_id = ?", userID, creatureID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (c *collection) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	db := GetTx(ctx, c.db)

	var ids []string
	err := db.Model(&model.CollectionEntry{}).
		Where("user_id = ?", userID).
		Order("discovered_at ASC").
		Pluck("creature_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (c *collection) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := c.db.Model(&model.CollectionEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
