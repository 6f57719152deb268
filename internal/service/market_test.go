package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/mocks"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/repository"
	"github.com/tidewatch/backend/internal/service"
	"go.uber.org/zap"
)

func newMarketService(t *testing.T) (service.MarketService, *mocks.UserRepository,
	*mocks.CollectionRepository, *mocks.AquariumRepository, *mocks.TxManager) {
	t.Helper()

	mockUserRepo := &mocks.UserRepository{}
	mockCollectionRepo := &mocks.CollectionRepository{}
	mockAquariumRepo := &mocks.AquariumRepository{}
	mockTxManager := &mocks.TxManager{}

	svc := service.NewMarketService(catalog.New(), mockUserRepo, mockCollectionRepo,
		mockAquariumRepo, mockTxManager, zap.NewNop())

	return svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, mockTxManager
}

func TestMarket_Purchase(t *testing.T) {
	t.Run("multi-item purchase debits once and records every item", func(t *testing.T) {
		svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Points: 500}, nil)
		mockCollectionRepo.On("ListCreatureIDs", mock.Anything, "user-1").
			Return([]string{"creature-001", "creature-004", "creature-011"}, nil)

		mockAquariumRepo.On("CreateEntry", mock.Anything,
			mock.AnythingOfType("*model.AquariumEntry")).Return(nil).Twice()
		mockAquariumRepo.On("CreatePurchase", mock.Anything,
			mock.MatchedBy(func(r *model.PurchaseRecord) bool {
				return r.UserID == "user-1" && r.PointsSpent > 0
			})).Return(nil).Twice()

		// common 50 + rare 150 = 200, leaving 300
		mockUserRepo.On("UpdatePoints", mock.Anything, "user-1", int64(300)).Return(nil)

		resp, err := svc.Purchase(context.Background(), service.PurchaseCommand{
			UserID:      "user-1",
			CreatureIDs: []string{"creature-001", "creature-004"},
		})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"creature-001", "creature-004"}, resp.PurchasedIDs)
		assert.Equal(t, int64(200), resp.TotalSpent)
		assert.Equal(t, int64(300), resp.RemainingBalance)
		mockUserRepo.AssertExpectations(t)
		mockAquariumRepo.AssertExpectations(t)
	})

	t.Run("empty cart succeeds without writes", func(t *testing.T) {
		svc, mockUserRepo, _, mockAquariumRepo, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Points: 120}, nil)

		resp, err := svc.Purchase(context.Background(), service.PurchaseCommand{UserID: "user-1"})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Empty(t, resp.PurchasedIDs)
		assert.Equal(t, int64(0), resp.TotalSpent)
		assert.Equal(t, int64(120), resp.RemainingBalance)
		mockAquariumRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("undiscovered creature aborts the whole purchase", func(t *testing.T) {
		svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Points: 1000}, nil)
		mockCollectionRepo.On("ListCreatureIDs", mock.Anything, "user-1").
			Return([]string{"creature-001"}, nil)

		_, err := svc.Purchase(context.Background(), service.PurchaseCommand{
			UserID:      "user-1",
			CreatureIDs: []string{"creature-001", "creature-009"},
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeNotInCollection, serviceErr.Code)
		mockAquariumRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insufficient balance rejects before any write", func(t *testing.T) {
		svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Points: 100}, nil)
		mockCollectionRepo.On("ListCreatureIDs", mock.Anything, "user-1").
			Return([]string{"creature-011"}, nil)

		_, err := svc.Purchase(context.Background(), service.PurchaseCommand{
			UserID:      "user-1",
			CreatureIDs: []string{"creature-011"},
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErr.Code)
		mockAquariumRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("buying a creature already in the aquarium is allowed", func(t *testing.T) {
		svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "user-1").
			Return(&model.User{ID: "user-1", Points: 200}, nil)
		mockCollectionRepo.On("ListCreatureIDs", mock.Anything, "user-1").
			Return([]string{"creature-001"}, nil)
		mockAquariumRepo.On("CreateEntry", mock.Anything,
			mock.AnythingOfType("*model.AquariumEntry")).Return(nil)
		mockAquariumRepo.On("CreatePurchase", mock.Anything,
			mock.AnythingOfType("*model.PurchaseRecord")).Return(nil)
		mockUserRepo.On("UpdatePoints", mock.Anything, "user-1", int64(150)).Return(nil)

		resp, err := svc.Purchase(context.Background(), service.PurchaseCommand{
			UserID:      "user-1",
			CreatureIDs: []string{"creature-001"},
		})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, int64(150), resp.RemainingBalance)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mockUserRepo, _, _, mockTxManager := newMarketService(t)

		mockTxManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		mockUserRepo.On("GetByIDForUpdate", mock.Anything, "ghost").
			Return(nil, repository.ErrUserNotFound)

		_, err := svc.Purchase(context.Background(), service.PurchaseCommand{
			UserID:      "ghost",
			CreatureIDs: []string{"creature-001"},
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeUserNotFound, serviceErr.Code)
	})
}

func TestMarket_ListItems(t *testing.T) {
	svc, mockUserRepo, mockCollectionRepo, mockAquariumRepo, _ := newMarketService(t)

	mockUserRepo.On("GetByID", context.Background(), "user-1").
		Return(&model.User{ID: "user-1", Points: 250}, nil)
	mockCollectionRepo.On("ListCreatureIDs", context.Background(), "user-1").
		Return([]string{"creature-001", "creature-009"}, nil)
	mockAquariumRepo.On("ListCreatureIDs", context.Background(), "user-1").
		Return([]string{"creature-001"}, nil)

	listing, err := svc.ListItems(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(250), listing.UserPoints)
	assert.Len(t, listing.Items, 2)
	assert.True(t, listing.Items[0].InAquarium)
	assert.False(t, listing.Items[1].InAquarium)
	assert.Equal(t, int64(300), listing.Items[1].Price)
}

// lockingTxManager serializes transactions the way the row lock does in
// production: the second purchase cannot read the balance until the first
// has committed its debit.
type lockingTxManager struct {
	mu sync.Mutex
}

func (m *lockingTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type balanceUserRepo struct {
	user model.User
}

func (r *balanceUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	u := r.user
	return &u, nil
}

func (r *balanceUserRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.User, error) {
	u := r.user
	return &u, nil
}

func (r *balanceUserRepo) UpdatePoints(ctx context.Context, id string, points int64) error {
	r.user.Points = points
	return nil
}

func (r *balanceUserRepo) Count(ctx context.Context) (int64, error) {
	return 1, nil
}

type fixedCollectionRepo struct {
	creatureIDs []string
}

func (r *fixedCollectionRepo) Create(ctx context.Context, entry *model.CollectionEntry) error {
	return nil
}

func (r *fixedCollectionRepo) Exists(ctx context.Context, userID, creatureID string) (bool, error) {
	for _, id := range r.creatureIDs {
		if id == creatureID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fixedCollectionRepo) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	return r.creatureIDs, nil
}

func (r *fixedCollectionRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return int64(len(r.creatureIDs)), nil
}

type countingAquariumRepo struct {
	entries   int
	purchases int
}

func (r *countingAquariumRepo) CreateEntry(ctx context.Context, entry *model.AquariumEntry) error {
	r.entries++
	return nil
}

func (r *countingAquariumRepo) CreatePurchase(ctx context.Context, record *model.PurchaseRecord) error {
	r.purchases++
	return nil
}

func (r *countingAquariumRepo) ListCreatureIDs(ctx context.Context, userID string) ([]string, error) {
	return nil, nil
}

func (r *countingAquariumRepo) ListPurchases(ctx context.Context, userID string, limit, offset int) ([]model.PurchaseRecord, error) {
	return nil, nil
}

func TestMarket_Purchase_ConcurrentOverspend(t *testing.T) {
	// 500 points, two concurrent buys of a 300-point legendary: each is
	// affordable alone, together they overspend. The lock discipline must
	// let exactly one through.
	userRepo := &balanceUserRepo{user: model.User{ID: "user-1", Points: 500}}
	collectionRepo := &fixedCollectionRepo{creatureIDs: []string{"creature-010"}}
	aquariumRepo := &countingAquariumRepo{}

	svc := service.NewMarketService(catalog.New(), userRepo, collectionRepo,
		aquariumRepo, &lockingTxManager{}, zap.NewNop())

	cmd := service.PurchaseCommand{UserID: "user-1", CreatureIDs: []string{"creature-010"}}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), cmd)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, insufficient int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientBalance, serviceErr.Code)
		insufficient++
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, int64(200), userRepo.user.Points)
	assert.Equal(t, 1, aquariumRepo.entries)
	assert.Equal(t, 1, aquariumRepo.purchases)
}
