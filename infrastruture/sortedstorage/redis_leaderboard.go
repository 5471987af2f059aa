// Package sortedstorage keeps ranked data in Redis sorted sets.
package sortedstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/icare/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockTries = 64

// RedisLeaderboard stores each player's best move count as the score of a
// sorted set member, so ascending order is the ranking.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if key == "" {
		return nil, errors.New("leaderboard key is empty")
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		key:    key,
	}, nil
}

// Submit keeps the lower of moves and the player's current score.
func (rl *RedisLeaderboard) Submit(ctx context.Context, playerID uuid.UUID, moves int) error {
	member := playerID.String()
	mutex := rl.locker.NewMutex(rl.key+":"+member+":lock", redsync.WithTries(lockTries))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking standing of %s: %w", member, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}()

	best, err := rl.client.ZScore(ctx, rl.key, member).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return err
	case best <= float64(moves):
		return nil
	}

	return rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(moves), Member: member}).Err()
}

// Top returns the n best standings. Ties are ordered by player id.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]domain.Standing, error) {
	if n <= 0 {
		return []domain.Standing{}, nil
	}

	entries, err := rl.client.ZRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]domain.Standing, 0, len(entries))
	for _, e := range entries {
		member, _ := e.Member.(string)
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		standings = append(standings, domain.Standing{PlayerID: id, Moves: int(e.Score)})
	}
	return standings, nil
}

// Count returns the number of ranked players.
func (rl *RedisLeaderboard) Count(ctx context.Context) int64 {
	return rl.client.ZCard(ctx, rl.key).Val()
}
