package repository

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/model"
	"gorm.io/gorm"
)

var ErrSightingNotFound = errors.New("SIGHTING_NOT_FOUND")

// FingerprintRecord is a projection of one stored image hash with the record
// and user it came from, the unit the duplicate scan works over.
type FingerprintRecord struct {
	RecordID string
	UserID   string
	Hash     string
}

type SightingRepository interface {
	Create(ctx context.Context, sighting *model.Sighting) error
	GetByID(ctx context.Context, id string) (*model.Sighting, error)
	List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Sighting, error)
	Count(ctx context.Context, status model.SubmissionStatus, userID string) (int64, error)
	CountApprovedByUser(ctx context.Context, userID string) (int64, error)
	UpdateDecision(ctx context.Context, sighting *model.Sighting) error
	ListFingerprints(ctx context.Context) ([]FingerprintRecord, error)
}

type sighting struct {
	db *gorm.DB
}

func NewSightingRepository(db *gorm.DB) SightingRepository {
	return &sighting{db: db}
}

func (s *sighting) Create(ctx context.Context, record *model.Sighting) error {
	db := GetTx(ctx, s.db)
	return db.Create(record).Error
}

func (s *sighting) GetByID(ctx context.Context, id string) (*model.Sighting, error) {
	db := GetTx(ctx, s.db)

	var record model.Sighting
	err := db.Where("id = ?", id).First(&record).Error
	if err == nil {
		return &record, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSightingNotFound
	}

	return nil, err
}

func (s *sighting) List(ctx context.Context, status model.SubmissionStatus, userID string, limit, offset int) ([]model.Sighting, error) {
	query := s.db.Model(&model.Sighting{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var records []model.Sighting
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *sighting) Count(ctx context.Context, status model.SubmissionStatus, userID string) (int64, error) {
	query := s.db.Model(&model.Sighting{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (s *sighting) CountApprovedByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.Model(&model.Sighting{}).
		Where("user_id = ? AND status = ?", userID, model.SubmissionStatusApproved).
		Count(&count).Error
	return count, err
}

func (s *sighting) UpdateDecision(ctx context.Context, record *model.Sighting) error {
	db := GetTx(ctx, s.db)
	return db.Model(record).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"status":        record.Status,
			"creature_id":   record.CreatureID,
			"points_earned": record.PointsEarned,
			"updated_at":    record.UpdatedAt,
		}).Error
}

func (s *sighting) ListFingerprints(ctx context.Context) ([]FingerprintRecord, error) {
	var rows []FingerprintRecord
	err := s.db.Model(&model.Sighting{}).
		Select("id AS record_id, user_id, image_hash AS hash").
		Where("image_hash IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
