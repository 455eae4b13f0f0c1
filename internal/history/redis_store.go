package history

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dealerdesk/finance-engine/internal/domain"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
)

const redisKeyPrefix = "lookup-history:"

// RedisStore keeps history lists as JSON blobs in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]domain.LookupResult, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, customError.WrapCacheError(err)
	}

	var results []domain.LookupResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, customError.WrapCacheError(err)
	}
	return results, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, results []domain.LookupResult) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return customError.WrapCacheError(err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, 0).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}
