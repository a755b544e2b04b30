package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/multiservices/backend/pkg"

	"github.com/go-redis/redis/v8"
)

const (
	stateKeyPrefix = "multiservices-oauth-state||"
	stateTTL       = 10 * time.Minute
)

// StateStore keeps the short-lived oauth state nonces in redis, so the
// login redirect and the callback do not have to hit the same instance
type StateStore struct {
	redisClient *redis.Client
	// ability to inject random string generator and clock (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NowFunc        func() time.Time
}

func NewStateStore(redisClient *redis.Client) *StateStore {
	return &StateStore{
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		NowFunc:        time.Now,
	}
}

// Create generates a fresh state nonce and stores it with a TTL
func (s *StateStore) Create(ctx context.Context) (string, error) {
	state, err := s.RandStringFunc(24)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}

	cmd := s.redisClient.Set(ctx, stateKeyPrefix+state, s.NowFunc().Unix(), stateTTL)
	if err := cmd.Err(); err != nil {
		return "", fmt.Errorf("store state: %w", err)
	}

	return state, nil
}

// Consume checks that the given state was issued by us and deletes it
// in a single GETDEL, so every nonce is usable exactly once even when
// two callbacks race with the same state
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	cmd := s.redisClient.GetDel(ctx, stateKeyPrefix+state)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
