package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roastline/models"

	"github.com/go-redis/redis/v8"
)

// CheckoutSessionPrefix is the prefix used for Redis checkout session keys.
const CheckoutSessionPrefix = "checkoutSession:"

// RedisSessionStore keeps wizard drafts in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// Save stores the draft under its session id.
func (s *RedisSessionStore) Save(ctx context.Context, state *models.CheckoutState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Client.Set(ctx, CheckoutSessionPrefix+state.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

// Get retrieves a draft, ErrSessionNotFound when missing or expired.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.CheckoutState, error) {
	data, err := s.Client.Get(ctx, CheckoutSessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout session: %w", err)
	}
	var state models.CheckoutState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &state, nil
}

// Delete removes a draft.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, CheckoutSessionPrefix+id).Err()
}
