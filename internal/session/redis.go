package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// TTL matches the JWT lifetime so redis cleans up expired sessions on its own.
const TTL = 24 * time.Hour

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID uint) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()

	if err := s.rdb.Set(ctx, sessionKey(sessionID), userID, TTL).Err(); err != nil {
		return "", err
	}

	// The per-user index makes RevokeAll possible; its TTL is refreshed on
	// every login so it outlives the newest session.
	if err := s.rdb.SAdd(ctx, userSessionsKey(userID), sessionID).Err(); err != nil {
		return "", err
	}
	if err := s.rdb.Expire(ctx, userSessionsKey(userID), TTL).Err(); err != nil {
		return "", err
	}

	return sessionID, nil
}

func (s *RedisStore) Exists(ctx context.Context, userID uint, sessionID string) (bool, error) {
	val, err := s.rdb.Get(ctx, sessionKey(sessionID)).Uint64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return uint(val) == userID, nil
}

func (s *RedisStore) Revoke(ctx context.Context, userID uint, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return err
	}
	return s.rdb.SRem(ctx, userSessionsKey(userID), sessionID).Err()
}

func (s *RedisStore) RevokeAll(ctx context.Context, userID uint) error {
	ids, err := s.rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))

	return s.rdb.Del(ctx, keys...).Err()
}

var _ Store = (*RedisStore)(nil)
