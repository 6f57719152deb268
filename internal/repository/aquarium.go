package repository

import (
	"context"

	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
)

type AquariumRepository interface {
	CreateEntry(ctx context.Context, entry *model.AquariumEntry) error
	CreatePurchase(ctx context.Context, record *model.PurchaseRecord) error
	ListCreatureIDs(ctx context.Context, userID string) ([]string, error)
	ListPurchases(ctx context.Context, userID string, limit, offset int) ([]model.PurchaseRecord, error)
}

type aquarium struct {
	db *gorm.DB
}

func NewAquariumRepository(db *gorm.DB) AquariumRepository {
	return &aquarium{db: db}
}

func (a *aquarium) CreateEntry(ctx context.Context, entry *model.AquariumEntry) error {
	db := GetTx(ctx, a.db)
	return db.Create(entry).Error
}

func (a *aquarium) CreatePurchase(ctx context.Context, record *model.PurchaseRecord) error {
	db := GetTx(ctx, a.db)
	return db.Create(record).Error
}

func (a *aquarium) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	db := GetTx(ctx, a.db)

	var ids []string
	err := db.Model(&model.AquariumEntry{}).
		Where("user_id = ?", userID).
		Pluck("creature_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (a *aquarium) ListPurchases(ctx context.Context, userID string, limit, offset int) ([]model.PurchaseRecord, error) {
	var records []model.PurchaseRecord
	err := a.db.Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
