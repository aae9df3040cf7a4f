package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pfm-backend/domain"
)

const userKeyPrefix = "user:"

// RedisUserRepository stores each user as a hash under "user:<email>".
type RedisUserRepository struct {
	client *redis.Client
}

func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{client: client}
}

func userKey(email string) string {
	return userKeyPrefix + strings.ToLower(email)
}

// Create writes every field in one MULTI/EXEC guarded by WATCH, so readers
// never see a partially written user.
func (r *RedisUserRepository) Create(ctx context.Context, user domain.User) error {
	key := userKey(user.Email)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrUserExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key,
				"id", user.ID,
				"name", user.Name,
				"email", user.Email,
				"password", user.Password,
				"created_at", user.CreatedAt.UTC().Format(time.RFC3339Nano),
			)
			return nil
		})
		return err
	}, key)

	switch {
	case errors.Is(err, ErrUserExists), errors.Is(err, redis.TxFailedErr):
		return ErrUserExists
	case err != nil:
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *RedisUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	fields, err := r.client.HGetAll(ctx, userKey(email)).Result()
	if err != nil {
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	if len(fields) == 0 {
		return domain.User{}, ErrNotFound
	}

	user := domain.User{
		ID:       fields["id"],
		Name:     fields["name"],
		Email:    fields["email"],
		Password: fields["password"],
	}
	if ts := fields["created_at"]; ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			user.CreatedAt = t
		}
	}
	return user, nil
}

func (r *RedisUserRepository) Delete(ctx context.Context, email string) error {
	n, err := r.client.Del(ctx, userKey(email)).Result()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
