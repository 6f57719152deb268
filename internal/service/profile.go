package service

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

type UserStats struct {
	UserID            string
	Nickname          string
	Points            int64
	ApprovedSightings int64
	ApprovedCleanups  int64
	CollectionSize    int64
	CatalogSize       int
}

type ProfileService interface {
	Stats(ctx context.Context, userID string) (UserStats, error)
	// Collection returns discovered creature IDs in discovery order.
	Collection(ctx context.Context, userID string) ([]string, error)
}

type profile struct {
	catalog        catalog.Catalog
	userRepo       repository.UserRepository
	sightingRepo   repository.SightingRepository
	cleanupRepo    repository.CleanupRepository
	collectionRepo repository.CollectionRepository
	logger         *zap.Logger
}

func NewProfileService(cat catalog.Catalog, userRepo repository.UserRepository,
	sightingRepo repository.SightingRepository, cleanupRepo repository.CleanupRepository,
	collectionRepo repository.CollectionRepository, logger *zap.Logger) ProfileService {
	return &profile{
		catalog:        cat,
		userRepo:       userRepo,
		sightingRepo:   sightingRepo,
		cleanupRepo:    cleanupRepo,
		collectionRepo: collectionRepo,
		logger:         logger,
	}
}

func (p *profile) Stats(ctx context.Context, userID string) (UserStats, error) {
	user, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserStats{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return UserStats{}, NewServiceError(ErrCodeDatabase, err)
	}

	sightings, err := p.sightingRepo.CountApprovedByUser(ctx, userID)
	if err != nil {
		return UserStats{}, NewServiceError(ErrCodeDatabase, err)
	}

	cleanups, err := p.cleanupRepo.CountApprovedByUser(ctx, userID)
	if err != nil {
		return UserStats{}, NewServiceError(ErrCodeDatabase, err)
	}

	collected, err := p.collectionRepo.CountByUser(ctx, userID)
	if err != nil {
		return UserStats{}, NewServiceError(ErrCodeDatabase, err)
	}

	return UserStats{
		UserID:            user.ID,
		Nickname:          user.Nickname,
		Points:            user.Points,
		ApprovedSightings: sightings,
		ApprovedCleanups:  cleanups,
		CollectionSize:    collected,
		CatalogSize:       p.catalog.Total(),
	}, nil
}

func (p *profile) Collection(ctx context.Context, userID string) ([]string, error) {
	ids, err := p.collectionRepo.ListCreatureIDs(ctx, userID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return ids, nil
}
