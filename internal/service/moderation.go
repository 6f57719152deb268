package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

// EventPublisher sends an approval event to the ranking worker after the
// decision transaction commits. Publish failures never roll the decision
// back; the worker catches up from the database.
type EventPublisher interface {
	PublishApproval(ctx context.Context, event ApprovalEvent) error
}

// ModerationService decides pending submissions. A decision is terminal:
// the status flips once and the award, collection row and balance credit
// all land in the same database transaction.
type ModerationService interface {
	DecideSighting(ctx context.Context, cmd DecideSightingCommand) (DecideSightingResponse, error)
	DecideCleanup(ctx context.Context, cmd DecideCleanupCommand) (DecideCleanupResponse, error)
	PendingSightings(ctx context.Context, limit, offset int) ([]model.Sighting, int64, error)
	PendingCleanups(ctx context.Context, limit, offset int) ([]model.Cleanup, error)
}

type moderation struct {
	catalog        catalog.Catalog
	points         PointService
	sightingRepo   repository.SightingRepository
	cleanupRepo    repository.CleanupRepository
	collectionRepo repository.CollectionRepository
	userRepo       repository.UserRepository
	txManager      repository.TxManager
	publisher      EventPublisher
	logger         *zap.Logger
}

func NewModerationService(cat catalog.Catalog, points PointService,
	sightingRepo repository.SightingRepository, cleanupRepo repository.CleanupRepository,
	collectionRepo repository.CollectionRepository, userRepo repository.UserRepository,
	txManager repository.TxManager, publisher EventPublisher, logger *zap.Logger) ModerationService {
	return &moderation{
		catalog:        cat,
		points:         points,
		sightingRepo:   sightingRepo,
		cleanupRepo:    cleanupRepo,
		collectionRepo: collectionRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

func (m *moderation) DecideSighting(ctx context.Context, cmd DecideSightingCommand) (DecideSightingResponse, error) {
	var resp DecideSightingResponse
	var event *ApprovalEvent

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		record, err := m.sightingRepo.GetByID(ctx, cmd.SightingID)
		if err != nil {
			if errors.Is(err, repository.ErrSightingNotFound) {
				return NewServiceError(constants.ErrCodeSightingNotFound, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if record.Status != model.SubmissionStatusPending {
			return NewServiceError(constants.ErrCodeAlreadyDecided, ErrAlreadyDecided)
		}

		if !cmd.Approve {
			record.Status = model.SubmissionStatusRejected
			record.UpdatedAt = time.Now()
			if err := m.sightingRepo.UpdateDecision(ctx, record); err != nil {
				return NewServiceError(ErrCodeDatabase, err)
			}

			resp = DecideSightingResponse{Status: model.SubmissionStatusRejected}
			return nil
		}

		creatureID := record.CreatureID
		if cmd.CreatureID != nil {
			creatureID = cmd.CreatureID
		}

		resolved := "unknown"
		if creatureID != nil {
			resolved = *creatureID
		}

		award, err := m.points.SightingAward(ctx, record.UserID, resolved, m.catalog.RarityOf(resolved))
		if err != nil {
			return err
		}

		discovery := award.Bonus > 0
		if _, known := m.catalog.Get(resolved); known && discovery {
			entry := model.CollectionEntry{
				ID:              uuid.NewString(),
				UserID:          record.UserID,
				CreatureID:      resolved,
				FirstSightingID: &record.ID,
				DiscoveredAt:    time.Now(),
			}
			if err := m.collectionRepo.Create(ctx, &entry); err != nil {
				// Lost a race with a concurrent approval for the same
				// creature; the bonus no longer applies.
				if errors.Is(err, repository.ErrCollectionDuplicate) {
					award.Bonus = 0
					award.Total = award.Base
					discovery = false
				} else {
					return NewServiceError(ErrCodeDatabase, err)
				}
			}
		} else if !known {
			discovery = false
			award.Bonus = 0
			award.Total = award.Base
		}

		record.Status = model.SubmissionStatusApproved
		record.CreatureID = &resolved
		record.PointsEarned = award.Total
		record.UpdatedAt = time.Now()
		if err := m.sightingRepo.UpdateDecision(ctx, record); err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		if err := m.credit(ctx, record.UserID, award.Total); err != nil {
			return err
		}

		resp = DecideSightingResponse{
			Status:       model.SubmissionStatusApproved,
			PointsEarned: award.Total,
			NewDiscovery: discovery,
		}
		event = &ApprovalEvent{
			Kind:       "sighting",
			RecordID:   record.ID,
			UserID:     record.UserID,
			CreatureID: resolved,
			Points:     award.Total,
			Discovery:  discovery,
		}
		return nil
	})

	if err != nil {
		return DecideSightingResponse{}, err
	}

	m.publish(ctx, event)

	m.logger.Info("Sighting decided",
		zap.String("sightingID", cmd.SightingID),
		zap.String("status", string(resp.Status)),
		zap.Int64("points", resp.PointsEarned),
		zap.Bool("discovery", resp.NewDiscovery))

	return resp, nil
}

func (m *moderation) DecideCleanup(ctx context.Context, cmd DecideCleanupCommand) (DecideCleanupResponse, error) {
	var resp DecideCleanupResponse
	var event *ApprovalEvent

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		record, err := m.cleanupRepo.GetByID(ctx, cmd.CleanupID)
		if err != nil {
			if errors.Is(err, repository.ErrCleanupNotFound) {
				return NewServiceError(constants.ErrCodeCleanupNotFound, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if record.Status != model.SubmissionStatusPending {
			return NewServiceError(constants.ErrCodeAlreadyDecided, ErrAlreadyDecided)
		}

		if !cmd.Approve {
			record.Status = model.SubmissionStatusRejected
			record.UpdatedAt = time.Now()
			if err := m.cleanupRepo.UpdateDecision(ctx, record); err != nil {
				return NewServiceError(ErrCodeDatabase, err)
			}

			resp = DecideCleanupResponse{Status: model.SubmissionStatusRejected}
			return nil
		}

		award := m.points.CleanupAward(record.Amount)

		record.Status = model.SubmissionStatusApproved
		record.PointsEarned = award.Total
		record.UpdatedAt = time.Now()
		if err := m.cleanupRepo.UpdateDecision(ctx, record); err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		if err := m.credit(ctx, record.UserID, award.Total); err != nil {
			return err
		}

		resp = DecideCleanupResponse{
			Status:       model.SubmissionStatusApproved,
			PointsEarned: award.Total,
		}
		event = &ApprovalEvent{
			Kind:     "cleanup",
			RecordID: record.ID,
			UserID:   record.UserID,
			Points:   award.Total,
		}
		return nil
	})

	if err != nil {
		return DecideCleanupResponse{}, err
	}

	m.publish(ctx, event)

	m.logger.Info("Cleanup decided",
		zap.String("cleanupID", cmd.CleanupID),
		zap.String("status", string(resp.Status)),
		zap.Int64("points", resp.PointsEarned))

	return resp, nil
}

func (m *moderation) PendingSightings(ctx context.Context, limit, offset int) ([]model.Sighting, int64, error) {
	records, err := m.sightingRepo.List(ctx, model.SubmissionStatusPending, "", limit, offset)
	if err != nil {
		return nil, 0, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := m.sightingRepo.Count(ctx, model.SubmissionStatusPending, "")
	if err != nil {
		return nil, 0, NewServiceError(ErrCodeDatabase, err)
	}

	return records, total, nil
}

func (m *moderation) PendingCleanups(ctx context.Context, limit, offset int) ([]model.Cleanup, error) {
	records, err := m.cleanupRepo.List(ctx, model.SubmissionStatusPending, "", limit, offset)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return records, nil
}

// credit adds points to the submitter's balance inside the caller's
// transaction. A missing user drops the credit with a warning; the
// submission row still records what was earned.
func (m *moderation) credit(ctx context.Context, userID string, amount int64) error {
	user, err := m.userRepo.GetByIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			m.logger.Warn("Approved submission for unknown user, dropping credit",
				zap.String("userID", userID),
				zap.Int64("amount", amount))
			return nil
		}
		return NewServiceError(ErrCodeDatabase, err)
	}

	if err := m.userRepo.UpdatePoints(ctx, user.ID, user.Points+amount); err != nil {
		return NewServiceError(ErrCodeDatabase, err)
	}

	return nil
}

func (m *moderation) publish(ctx context.Context, event *ApprovalEvent) {
	if event == nil || m.publisher == nil {
		return
	}

	if err := m.publisher.PublishApproval(ctx, *event); err != nil {
		m.logger.Error("Failed to publish approval event",
			zap.String("kind", event.Kind),
			zap.String("recordID", event.RecordID),
			zap.Error(err))
	}
}
