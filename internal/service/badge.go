package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

type EarnedBadge struct {
	Badge    catalog.Badge
	EarnedAt time.Time
}

// BadgeService grants collection-count badges. Awarding runs after every
// approved discovery; the unique user/badge index absorbs replays, so the
// check is safe to retry from the queue.
type BadgeService interface {
	AwardCollectionBadges(ctx context.Context, userID string) ([]catalog.Badge, error)
	UserBadges(ctx context.Context, userID string) ([]EarnedBadge, error)
	AllBadges() []catalog.Badge
}

type badges struct {
	catalog        catalog.Catalog
	collectionRepo repository.CollectionRepository
	badgeRepo      repository.BadgeRepository
	logger         *zap.Logger
}

func NewBadgeService(cat catalog.Catalog, collectionRepo repository.CollectionRepository,
	badgeRepo repository.BadgeRepository, logger *zap.Logger) BadgeService {
	return &badges{
		catalog:        cat,
		collectionRepo: collectionRepo,
		badgeRepo:      badgeRepo,
		logger:         logger,
	}
}

func (b *badges) AwardCollectionBadges(ctx context.Context, userID string) ([]catalog.Badge, error) {
	count, err := b.collectionRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	held, err := b.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	heldSet := make(map[string]struct{}, len(held))
	for _, h := range held {
		heldSet[h.BadgeID] = struct{}{}
	}

	var earned []catalog.Badge
	for _, badge := range b.catalog.Badges() {
		if count < badge.Threshold {
			continue
		}
		if _, ok := heldSet[badge.ID]; ok {
			continue
		}

		record := model.UserBadge{
			ID:       uuid.NewString(),
			UserID:   userID,
			BadgeID:  badge.ID,
			EarnedAt: time.Now(),
		}
		if err := b.badgeRepo.Create(ctx, &record); err != nil {
			if errors.Is(err, repository.ErrBadgeDuplicate) {
				continue
			}
			return nil, NewServiceError(ErrCodeDatabase, err)
		}

		b.logger.Info("Badge awarded",
			zap.String("userID", userID),
			zap.String("badgeID", badge.ID),
			zap.Int64("collectionSize", count))
		earned = append(earned, badge)
	}

	return earned, nil
}

func (b *badges) UserBadges(ctx context.Context, userID string) ([]EarnedBadge, error) {
	records, err := b.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	out := make([]EarnedBadge, 0, len(records))
	for _, r := range records {
		badge, ok := b.catalog.GetBadge(r.BadgeID)
		if !ok {
			continue
		}
		out = append(out, EarnedBadge{Badge: badge, EarnedAt: r.EarnedAt})
	}

	return out, nil
}

func (b *badges) AllBadges() []catalog.Badge {
	return b.catalog.Badges()
}
