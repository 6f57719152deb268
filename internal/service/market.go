package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"go.uber.org/zap"
)

type MarketItem struct {
	CreatureID string
	Name       string
	Category   string
	Rarity     catalog.Rarity
	Price      int64
	InAquarium bool
}

type MarketListing struct {
	Items      []MarketItem
	UserPoints int64
}

type MarketService interface {
	// ListItems returns the creatures the user may buy: collection
	// membership gates visibility, aquarium ownership is informational.
	ListItems(ctx context.Context, userID string) (MarketListing, error)
	// Purchase executes the whole multi-item request atomically. The user
	// row stays locked from the balance read to commit so concurrent
	// purchases cannot jointly overspend.
	Purchase(ctx context.Context, cmd PurchaseCommand) (PurchaseResponse, error)
}

type market struct {
	catalog        catalog.Catalog
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	aquariumRepo   repository.AquariumRepository
	txManager      repository.TxManager
	logger         *zap.Logger
}

func NewMarketService(cat catalog.Catalog, userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository, aquariumRepo repository.AquariumRepository,
	txManager repository.TxManager, logger *zap.Logger) MarketService {
	return &market{
		catalog:        cat,
		userRepo:       userRepo,
		collectionRepo: collectionRepo,
		aquariumRepo:   aquariumRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (m *market) ListItems(ctx context.Context, userID string) (MarketListing, error) {
	user, err := m.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return MarketListing{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return MarketListing{}, NewServiceError(ErrCodeDatabase, err)
	}

	discovered, err := m.collectionRepo.ListCreatureIDs(ctx, userID)
	if err != nil {
		return MarketListing{}, NewServiceError(ErrCodeDatabase, err)
	}

	owned, err := m.aquariumRepo.ListCreatureIDs(ctx, userID)
	if err != nil {
		return MarketListing{}, NewServiceError(ErrCodeDatabase, err)
	}

	ownedSet := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	items := make([]MarketItem, 0, len(discovered))
	for _, id := range discovered {
		creature, _ := m.catalog.Get(id)
		_, inAquarium := ownedSet[id]
		items = append(items, MarketItem{
			CreatureID: id,
			Name:       creature.Name,
			Category:   creature.Category,
			Rarity:     m.catalog.RarityOf(id),
			Price:      m.catalog.PriceOf(id),
			InAquarium: inAquarium,
		})
	}

	return MarketListing{Items: items, UserPoints: user.Points}, nil
}

func (m *market) Purchase(ctx context.Context, cmd PurchaseCommand) (PurchaseResponse, error) {
	var resp PurchaseResponse

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := m.userRepo.GetByIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewServiceError(constants.ErrCodeUserNotFound, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if len(cmd.CreatureIDs) == 0 {
			resp = PurchaseResponse{
				Success:          true,
				PurchasedIDs:     []string{},
				RemainingBalance: user.Points,
			}
			return nil
		}

		discovered, err := m.collectionRepo.ListCreatureIDs(ctx, cmd.UserID)
		if err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		discoveredSet := make(map[string]struct{}, len(discovered))
		for _, id := range discovered {
			discoveredSet[id] = struct{}{}
		}

		var totalPrice int64
		for _, id := range cmd.CreatureIDs {
			if _, ok := discoveredSet[id]; !ok {
				return NewServiceError(constants.ErrCodeNotInCollection,
					fmt.Errorf("creature %s not in collection", id))
			}
			totalPrice += m.catalog.PriceOf(id)
		}

		if user.Points < totalPrice {
			return NewServiceError(constants.ErrCodeInsufficientBalance,
				fmt.Errorf("need %d points, have %d", totalPrice, user.Points))
		}

		now := time.Now()
		purchased := make([]string, 0, len(cmd.CreatureIDs))

		for _, id := range cmd.CreatureIDs {
			entry := model.AquariumEntry{
				ID:          uuid.NewString(),
				UserID:      cmd.UserID,
				CreatureID:  id,
				PurchasedAt: now,
			}
			if err := m.aquariumRepo.CreateEntry(ctx, &entry); err != nil {
				return NewServiceError(ErrCodeDatabase, err)
			}

			record := model.PurchaseRecord{
				ID:          uuid.NewString(),
				UserID:      cmd.UserID,
				CreatureID:  id,
				PointsSpent: m.catalog.PriceOf(id),
				PurchasedAt: now,
			}
			if err := m.aquariumRepo.CreatePurchase(ctx, &record); err != nil {
				return NewServiceError(ErrCodeDatabase, err)
			}

			purchased = append(purchased, id)
		}

		newBalance := user.Points - totalPrice
		if err := m.userRepo.UpdatePoints(ctx, user.ID, newBalance); err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		resp = PurchaseResponse{
			Success:          true,
			PurchasedIDs:     purchased,
			TotalSpent:       totalPrice,
			RemainingBalance: newBalance,
		}
		return nil
	})

	if err != nil {
		m.logger.Warn("Purchase aborted",
			zap.String("userID", cmd.UserID),
			zap.Strings("creatureIDs", cmd.CreatureIDs),
			zap.Error(err))
		return PurchaseResponse{}, err
	}

	m.logger.Info("Purchase completed",
		zap.String("userID", cmd.UserID),
		zap.Int("items", len(resp.PurchasedIDs)),
		zap.Int64("totalSpent", resp.TotalSpent),
		zap.Int64("remainingBalance", resp.RemainingBalance))

	return resp, nil
}
