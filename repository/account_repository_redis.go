package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pfm-backend/domain"
)

const accountKeyPrefix = "account:"

// RedisAccountRepository keeps each snapshot as a JSON document under
// "account:<id>".
type RedisAccountRepository struct {
	client *redis.Client
}

func NewRedisAccountRepository(client *redis.Client) *RedisAccountRepository {
	return &RedisAccountRepository{client: client}
}

func (r *RedisAccountRepository) Fetch(ctx context.Context, accountID string) (domain.AccountSnapshot, error) {
	raw, err := r.client.Get(ctx, accountKeyPrefix+accountID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.AccountSnapshot{}, fmt.Errorf("account %q: %w", accountID, ErrNotFound)
	}
	if err != nil {
		return domain.AccountSnapshot{}, fmt.Errorf("fetch account %q: %w", accountID, err)
	}

	var snap domain.AccountSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.AccountSnapshot{}, fmt.Errorf("account %q: %w: %v", accountID, domain.ErrInvalidSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return domain.AccountSnapshot{}, fmt.Errorf("account %q: %w", accountID, err)
	}
	return snap, nil
}

func (r *RedisAccountRepository) Save(ctx context.Context, snapshot domain.AccountSnapshot) error {
	if snapshot.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidSnapshot)
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, accountKeyPrefix+snapshot.ID, raw, 0).Err()
}
