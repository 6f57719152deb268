package service_test

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/tidewatch/backend/internal/service"
	"go.uber.org/zap"
)

func TestRanking_RecordApproval(t *testing.T) {
	logger := zap.NewNop()

	t.Run("sighting approval bumps the points board only", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		svc := service.NewRankingService(db, logger)

		redisMock.ExpectZIncrBy("ranking:points", 100, "user-1").SetVal(100)

		err := svc.RecordApproval(context.Background(), service.ApprovalEvent{
			Kind:   "sighting",
			UserID: "user-1",
			Points: 100,
		})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cleanup approval bumps both boards", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		svc := service.NewRankingService(db, logger)

		redisMock.ExpectZIncrBy("ranking:points", 50, "user-1").SetVal(50)
		redisMock.ExpectZIncrBy("ranking:cleanups", 1, "user-1").SetVal(1)

		err := svc.RecordApproval(context.Background(), service.ApprovalEvent{
			Kind:   "cleanup",
			UserID: "user-1",
			Points: 50,
		})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("zero points skips the points board", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		svc := service.NewRankingService(db, logger)

		redisMock.ExpectZIncrBy("ranking:cleanups", 1, "user-1").SetVal(1)

		err := svc.RecordApproval(context.Background(), service.ApprovalEvent{
			Kind:   "cleanup",
			UserID: "user-1",
			Points: 0,
		})

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestRanking_TopByPoints(t *testing.T) {
	logger := zap.NewNop()

	db, redisMock := redismock.NewClientMock()
	svc := service.NewRankingService(db, logger)

	redisMock.ExpectZRevRangeWithScores("ranking:points", 0, 2).SetVal([]redis.Z{
		{Member: "user-3", Score: 300},
		{Member: "user-1", Score: 120},
		{Member: "user-2", Score: 50},
	})

	entries, err := svc.TopByPoints(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, service.RankEntry{UserID: "user-3", Score: 300, Rank: 1}, entries[0])
	assert.Equal(t, service.RankEntry{UserID: "user-2", Score: 50, Rank: 3}, entries[2])
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestRanking_UserPointsRank(t *testing.T) {
	logger := zap.NewNop()

	t.Run("ranked user", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		svc := service.NewRankingService(db, logger)

		redisMock.ExpectZRevRank("ranking:points", "user-1").SetVal(4)
		redisMock.ExpectZScore("ranking:points", "user-1").SetVal(75)

		entry, err := svc.UserPointsRank(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(5), entry.Rank)
		assert.Equal(t, int64(75), entry.Score)
	})

	t.Run("unranked user returns zero entry", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		svc := service.NewRankingService(db, logger)

		redisMock.ExpectZRevRank("ranking:points", "ghost").RedisNil()

		entry, err := svc.UserPointsRank(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), entry.Rank)
		assert.Equal(t, int64(0), entry.Score)
	})
}
