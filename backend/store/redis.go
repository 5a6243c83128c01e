package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore — драйвер поверх Redis: на каждую партицию лексикографически
// упорядоченное sorted set из sort key'ев плюс hash с JSON-записями.
// Заполняется внешним конвейером записи, здесь только чтение
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func partitionKey(pk string) string { return "dash:part:" + pk }
func itemsKey(pk string) string     { return "dash:items:" + pk }

func (s *RedisStore) QueryByPrefix(ctx context.Context, pk, skPrefix string, descending bool) ([]Item, error) {
	// \xff больше любого байта в ключах, граница захватывает весь префикс
	rng := &redis.ZRangeBy{Min: "[" + skPrefix, Max: "[" + skPrefix + "\xff"}

	var (
		sks []string
		err error
	)
	if descending {
		sks, err = s.client.ZRevRangeByLex(ctx, partitionKey(pk), rng).Result()
	} else {
		sks, err = s.client.ZRangeByLex(ctx, partitionKey(pk), rng).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("querying redis partition index: %w", err)
	}

	return s.fetch(ctx, pk, sks)
}

func (s *RedisStore) QueryByRange(ctx context.Context, pk, skFrom, skTo string) ([]Item, error) {
	rng := &redis.ZRangeBy{Min: "[" + skFrom, Max: "[" + skTo}

	sks, err := s.client.ZRangeByLex(ctx, partitionKey(pk), rng).Result()
	if err != nil {
		return nil, fmt.Errorf("querying redis partition index: %w", err)
	}

	return s.fetch(ctx, pk, sks)
}

func (s *RedisStore) fetch(ctx context.Context, pk string, sks []string) ([]Item, error) {
	items := []Item{}
	if len(sks) == 0 {
		return items, nil
	}

	vals, err := s.client.HMGet(ctx, itemsKey(pk), sks...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetching redis items: %w", err)
	}

	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// Индекс знает ключ, но записи уже нет — партиция переписывается
			continue
		}
		var it Item
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			return nil, fmt.Errorf("decoding redis item %s/%s: %w", pk, sks[i], err)
		}
		items = append(items, it)
	}

	return items, nil
}
