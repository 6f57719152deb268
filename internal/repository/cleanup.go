package repository

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
)

var ErrCleanupNotFound = errors.New("CLEANUP_NOT_FOUND")

type CleanupRepository interface {
	Create(ctx context.Context, cleanup *model.Cleanup) error
	GetByID(ctx context.Context, id string) (*model.Cleanup, error)
	List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Cleanup, error)
	CountApprovedByUser(ctx context.Context, userID string) (int64, error)
	UpdateDecision(ctx context.Context, cleanup *model.Cleanup) error
	// ListBeforeFingerprints and ListAfterFingerprints feed the duplicate
	// scan; a cleanup contributes two corpus entries.
	ListBeforeFingerprints(ctx context.Context) ([]FingerprintRecord, error)
	ListAfterFingerprints(ctx context.Context) ([]FingerprintRecord, error)
}

type cleanup struct {
	db *gorm.DB
}

func NewCleanupRepository(db *gorm.DB) CleanupRepository {
	return &cleanup{db: db}
}

func (c *cleanup) Create(ctx context.Context, record *model.Cleanup) error {
	db := GetTx(ctx, c.db)
	return db.Create(record).Error
}

func (c *cleanup) GetByID(ctx context.Context, id string) (*model.Cleanup, error) {
	db := GetTx(ctx, c.db)

	var record model.Cleanup
	err := db.Where("id = ?", id).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCleanupNotFound
	}

	return nil, err
}

func (c *cleanup) List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Cleanup, error) {
	query := c.db.Model(&model.Cleanup{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var records []model.Cleanup
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (c *cleanup) CountApprovedByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := c.db.Model(&model.Cleanup{}).
		Where("user_id = ? AND status = ?", userID, model.SubmissionStatusApproved).
		Count(&count).Error
	return count, err
}

func (c *cleanup) UpdateDecision(ctx context.Context, record *model.Cleanup) error {
	db := GetTx(ctx, c.db)
	return db.Model(record).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"status":        record.Status,
			"points_earned": record.PointsEarned,
			"updated_at":    record.UpdatedAt,
		}).Error
}

func (c *cleanup) ListBeforeFingerprints(ctx context.Context) ([]FingerprintRecord, error) {
	return c.listFingerprints("before_image_hash")
}

func (c *cleanup) ListAfterFingerprints(ctx context.Context) ([]FingerprintRecord, error) {
	return c.listFingerprints("after_image_hash")
}

func (c *cleanup) listFingerprints(column string) ([]FingerprintRecord, error) {
	var rows []FingerprintRecord
	err := c.db.Model(&model.Cleanup{}).
		Select("id AS record_id, user_id, " + column + " AS hash").
		Where(column + " IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
