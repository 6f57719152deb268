package service

import (
	"context"
	"errors"

	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

// FirstDiscoveryBonus is the flat extra for logging a creature the user has
// never had approved before.
const FirstDiscoveryBonus = 20

const BonusReasonFirstDiscovery = "first_discovery"

type PointAward struct {
	Base         int64
	Bonus        int64
	Total        int64
	BonusReasons []string
}

type PointService interface {
	// SightingAward computes the award for an approved sighting. The
	// first-discovery check reads the user's collection, so call it inside
	// the same transaction that inserts the collection row.
	SightingAward(ctx context.Context, userID, creatureID string, rarity catalog.Rarity) (PointAward, error)
	CleanupAward(amount model.CleanupAmount) PointAward
	// AddPoints credits a user's balance under an exclusive row lock and
	// returns the new balance. An unknown user is a silent no-op returning 0.
	AddPoints(ctx context.Context, userID string, amount int64) (int64, error)
}

type points struct {
	catalog        catalog.Catalog
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	txManager      repository.TxManager
	logger         *zap.Logger
}

func NewPointService(cat catalog.Catalog, userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository, txManager repository.TxManager,
	logger *zap.Logger) PointService {
	return &points{
		catalog:        cat,
		userRepo:       userRepo,
		collectionRepo: collectionRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (p *points) SightingAward(ctx context.Context, userID, creatureID string, rarity catalog.Rarity) (PointAward, error) {
	award := PointAward{Base: p.catalog.SightingBase(rarity)}

	discovered, err := p.collectionRepo.Exists(ctx, userID, creatureID)
	if err != nil {
		p.logger.Error("Failed to check collection for first discovery",
			zap.String("userID", userID),
			zap.String("creatureID", creatureID),
			zap.Error(err))
		return PointAward{}, NewServiceError(ErrCodeDatabase, err)
	}

	if !discovered {
		award.Bonus = FirstDiscoveryBonus
		award.BonusReasons = append(award.BonusReasons, BonusReasonFirstDiscovery)
	}

	award.Total = award.Base + award.Bonus

	return award, nil
}

func (p *points) CleanupAward(amount model.CleanupAmount) PointAward {
	base := p.catalog.CleanupBase(amount)
	return PointAward{Base: base, Total: base}
}

func (p *points) AddPoints(ctx context.Context, userID string, amount int64) (int64, error) {
	var newBalance int64

	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := p.userRepo.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		user.Points += amount

		if err := p.userRepo.UpdatePoints(ctx, user.ID, user.Points); err != nil {
			return err
		}

		newBalance = user.Points
		return nil
	})

	if err == nil {
		return newBalance, nil
	}

	if errors.Is(err, repository.ErrUserNotFound) {
		p.logger.Warn("Points credited to unknown user, dropping award",
			zap.String("userID", userID),
			zap.Int64("amount", amount))
		return 0, nil
	}

	p.logger.Error("Failed to add points",
		zap.String("userID", userID),
		zap.Int64("amount", amount),
		zap.Error(err))

	return 0, NewServiceError(ErrCodeDatabase, err)
}
