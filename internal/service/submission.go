package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"github.com/tidewatch/backend/pkg/objectstore"
	"go.uber.org/zap"
)

// SubmissionService accepts new sightings and cleanups. Photos are
// fingerprinted before anything is written; a photo that matches another
// user's record is rejected outright, while a match against the submitter's
// own history is allowed through flagged for the moderator.
type SubmissionService interface {
	CreateSighting(ctx context.Context, cmd CreateSightingCommand) (CreateSightingResponse, error)
	CreateCleanup(ctx context.Context, cmd CreateCleanupCommand) (CreateCleanupResponse, error)
}

type submission struct {
	dedupe       DedupeService
	sightingRepo repository.SightingRepository
	cleanupRepo  repository.CleanupRepository
	store        objectstore.ObjectStore
	logger       *zap.Logger
}

func NewSubmissionService(dedupe DedupeService, sightingRepo repository.SightingRepository,
	cleanupRepo repository.CleanupRepository, store objectstore.ObjectStore,
	logger *zap.Logger) SubmissionService {
	return &submission{
		dedupe:       dedupe,
		sightingRepo: sightingRepo,
		cleanupRepo:  cleanupRepo,
		store:        store,
		logger:       logger,
	}
}

func (s *submission) CreateSighting(ctx context.Context, cmd CreateSightingCommand) (CreateSightingResponse, error) {
	check, err := s.dedupe.CheckDuplicate(ctx, cmd.ImageBytes, cmd.UserID)
	if err != nil {
		return CreateSightingResponse{}, err
	}

	if check.IsDuplicate && !check.IsSameUser {
		return CreateSightingResponse{}, NewServiceError(constants.ErrCodeDuplicateImage,
			errDuplicateOf(check.MatchedRecordID))
	}

	photoURL, err := s.store.Upload(ctx, cmd.ImageBytes, "sightings", "image/jpeg")
	if err != nil {
		s.logger.Error("Failed to upload sighting photo", zap.Error(err))
		return CreateSightingResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	hash := check.Hash.String()
	record := model.Sighting{
		ID:           uuid.NewString(),
		UserID:       cmd.UserID,
		CreatureID:   cmd.CreatureID,
		PhotoURL:     photoURL,
		Latitude:     cmd.Latitude,
		Longitude:    cmd.Longitude,
		LocationName: cmd.LocationName,
		Memo:         cmd.Memo,
		ImageHash:    &hash,
		AISuggestion: cmd.AISuggestion,
		AIConfidence: cmd.AIConfidence,
		Status:       model.SubmissionStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.sightingRepo.Create(ctx, &record); err != nil {
		s.logger.Error("Failed to create sighting", zap.Error(err))
		return CreateSightingResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	resp := CreateSightingResponse{SightingID: record.ID, Status: record.Status}
	if check.IsDuplicate {
		resp.DuplicateOfID = check.MatchedRecordID
	}

	s.logger.Info("Sighting created",
		zap.String("sightingID", record.ID),
		zap.String("userID", cmd.UserID),
		zap.Bool("ownDuplicate", check.IsDuplicate))

	return resp, nil
}

func (s *submission) CreateCleanup(ctx context.Context, cmd CreateCleanupCommand) (CreateCleanupResponse, error) {
	beforeCheck, err := s.dedupe.CheckDuplicate(ctx, cmd.BeforeBytes, cmd.UserID)
	if err != nil {
		return CreateCleanupResponse{}, err
	}
	if beforeCheck.IsDuplicate && !beforeCheck.IsSameUser {
		return CreateCleanupResponse{}, NewServiceError(constants.ErrCodeDuplicateImage,
			errDuplicateOf(beforeCheck.MatchedRecordID))
	}

	afterCheck, err := s.dedupe.CheckDuplicate(ctx, cmd.AfterBytes, cmd.UserID)
	if err != nil {
		return CreateCleanupResponse{}, err
	}
	if afterCheck.IsDuplicate && !afterCheck.IsSameUser {
		return CreateCleanupResponse{}, NewServiceError(constants.ErrCodeDuplicateImage,
			errDuplicateOf(afterCheck.MatchedRecordID))
	}

	beforeURL, err := s.store.Upload(ctx, cmd.BeforeBytes, "cleanups", "image/jpeg")
	if err != nil {
		s.logger.Error("Failed to upload cleanup before-photo", zap.Error(err))
		return CreateCleanupResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	afterURL, err := s.store.Upload(ctx, cmd.AfterBytes, "cleanups", "image/jpeg")
	if err != nil {
		s.logger.Error("Failed to upload cleanup after-photo", zap.Error(err))
		return CreateCleanupResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	beforeHash := beforeCheck.Hash.String()
	afterHash := afterCheck.Hash.String()
	record := model.Cleanup{
		ID:              uuid.NewString(),
		UserID:          cmd.UserID,
		BeforePhotoURL:  beforeURL,
		AfterPhotoURL:   afterURL,
		Latitude:        cmd.Latitude,
		Longitude:       cmd.Longitude,
		LocationName:    cmd.LocationName,
		TrashType:       cmd.TrashType,
		Amount:          cmd.Amount,
		BeforeImageHash: &beforeHash,
		AfterImageHash:  &afterHash,
		Status:          model.SubmissionStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.cleanupRepo.Create(ctx, &record); err != nil {
		s.logger.Error("Failed to create cleanup", zap.Error(err))
		return CreateCleanupResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	resp := CreateCleanupResponse{CleanupID: record.ID, Status: record.Status}
	if beforeCheck.IsDuplicate {
		resp.DuplicateOfID = beforeCheck.MatchedRecordID
	} else if afterCheck.IsDuplicate {
		resp.DuplicateOfID = afterCheck.MatchedRecordID
	}

	s.logger.Info("Cleanup created",
		zap.String("cleanupID", record.ID),
		zap.String("userID", cmd.UserID))

	return resp, nil
}

type duplicateOfError struct {
	recordID string
}

func errDuplicateOf(recordID string) error {
	return duplicateOfError{recordID: recordID}
}

func (e duplicateOfError) Error() string {
	return "image duplicates record " + e.recordID
}
