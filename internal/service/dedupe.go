package service

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/fingerprint"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

// DuplicateCheckResult reports the first stored photo found within the
// similarity threshold of a new upload. IsSameUser separates a benign
// re-upload from suspected theft of someone else's photo.
type DuplicateCheckResult struct {
	IsDuplicate     bool
	MatchedRecordID string
	IsSameUser      bool
	Distance        int
	Hash            fingerprint.Fingerprint
}

type DedupeService interface {
	// CheckDuplicate fingerprints imageBytes and scans every stored hash:
	// sighting photos, then cleanup before-photos, then cleanup
	// after-photos. First match below threshold wins.
	CheckDuplicate(ctx context.Context, imageBytes []byte, userID string) (DuplicateCheckResult, error)
}

type dedupe struct {
	sightingRepo repository.SightingRepository
	cleanupRepo  repository.CleanupRepository
	logger       *zap.Logger
}

func NewDedupeService(sightingRepo repository.SightingRepository, cleanupRepo repository.CleanupRepository,
	logger *zap.Logger) DedupeService {
	return &dedupe{sightingRepo: sightingRepo, cleanupRepo: cleanupRepo, logger: logger}
}

func (d *dedupe) CheckDuplicate(ctx context.Context, imageBytes []byte, userID string) (DuplicateCheckResult, error) {
	hash, err := fingerprint.Compute(imageBytes)
	if err != nil {
		if errors.Is(err, fingerprint.ErrUndecodable) {
			return DuplicateCheckResult{}, NewServiceError(constants.ErrCodeInvalidImage, err)
		}

		return DuplicateCheckResult{}, err
	}

	corpora := []func(context.Context) ([]repository.FingerprintRecord, error){
		d.sightingRepo.ListFingerprints,
		d.cleanupRepo.ListBeforeFingerprints,
		d.cleanupRepo.ListAfterFingerprints,
	}

	for _, fetch := range corpora {
		records, err := fetch(ctx)
		if err != nil {
			d.logger.Error("Failed to load fingerprint corpus", zap.Error(err))
			return DuplicateCheckResult{}, NewServiceError(ErrCodeDatabase, err)
		}

		for _, record := range records {
			distance := fingerprint.Distance(hash, fingerprint.Fingerprint(record.Hash))
			if distance >= fingerprint.SimilarityThreshold {
				continue
			}

			d.logger.Warn("Near-duplicate image detected",
				zap.String("userID", userID),
				zap.String("matchedRecordID", record.RecordID),
				zap.Int("distance", distance),
				zap.Bool("sameUser", record.UserID == userID))

			return DuplicateCheckResult{
				IsDuplicate:     true,
				MatchedRecordID: record.RecordID,
				IsSameUser:      record.UserID == userID,
				Distance:        distance,
				Hash:            hash,
			}, nil
		}
	}

	return DuplicateCheckResult{Hash: hash}, nil
}
