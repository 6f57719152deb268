package service

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	rankingKeyPoints   = "ranking:points"
	rankingKeyCleanups = "ranking:cleanups"
)

type RankEntry struct {
	UserID string
	Score  int64
	Rank   int64
}

// RankingService maintains leaderboards in Redis sorted sets. The sets are
// a cache over the relational data; they rebuild naturally as approval
// events flow through, so a flushed Redis heals on its own.
type RankingService interface {
	RecordApproval(ctx context.Context, event ApprovalEvent) error
	TopByPoints(ctx context.Context, n int64) ([]RankEntry, error)
	TopByCleanups(ctx context.Context, n int64) ([]RankEntry, error)
	UserPointsRank(ctx context.Context, userID string) (RankEntry, error)
}

type ranking struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewRankingService(client *redis.Client, logger *zap.Logger) RankingService {
	return &ranking{redis: client, logger: logger}
}

func (r *ranking) RecordApproval(ctx context.Context, event ApprovalEvent) error {
	if event.Points > 0 {
		if err := r.redis.ZIncrBy(ctx, rankingKeyPoints, float64(event.Points), event.UserID).Err(); err != nil {
			return err
		}
	}

	if event.Kind == "cleanup" {
		if err := r.redis.ZIncrBy(ctx, rankingKeyCleanups, 1, event.UserID).Err(); err != nil {
			return err
		}
	}

	r.logger.Debug("Ranking updated",
		zap.String("userID", event.UserID),
		zap.String("kind", event.Kind),
		zap.Int64("points", event.Points))

	return nil
}

func (r *ranking) TopByPoints(ctx context.Context, n int64) ([]RankEntry, error) {
	return r.top(ctx, rankingKeyPoints, n)
}

func (r *ranking) TopByCleanups(ctx context.Context, n int64) ([]RankEntry, error) {
	return r.top(ctx, rankingKeyCleanups, n)
}

func (r *ranking) top(ctx context.Context, key string, n int64) ([]RankEntry, error) {
	if n <= 0 {
		n = 10
	}

	members, err := r.redis.ZRevRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]RankEntry, 0, len(members))
	for i, member := range members {
		entries = append(entries, RankEntry{
			UserID: member.Member.(string),
			Score:  int64(member.Score),
			Rank:   int64(i) + 1,
		})
	}

	return entries, nil
}

func (r *ranking) UserPointsRank(ctx context.Context, userID string) (RankEntry, error) {
	rank, err := r.redis.ZRevRank(ctx, rankingKeyPoints, userID).Result()
	if err != nil {
		if err == redis.Nil {
			return RankEntry{UserID: userID}, nil
		}
		return RankEntry{}, err
	}

	score, err := r.redis.ZScore(ctx, rankingKeyPoints, userID).Result()
	if err != nil && err != redis.Nil {
		return RankEntry{}, err
	}

	return RankEntry{UserID: userID, Score: int64(score), Rank: rank + 1}, nil
}
