package store

import (
	"context"
	"fmt"

	"dashboard/backend/config"

	"github.com/redis/go-redis/v9"
)

// Item — одна денормализованная запись таблицы. Связи между сущностями
// закодированы в составных ключах PK/SK, остальные атрибуты опциональны
type Item struct {
	PK              string   `dynamodbav:"PK" json:"PK"`
	SK              string   `dynamodbav:"SK" json:"SK"`
	Title           string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Status          string   `dynamodbav:"status,omitempty" json:"status,omitempty"`
	UpdatedAt       string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Tags            []string `dynamodbav:"tags,omitempty,stringset" json:"tags,omitempty"`
	TotalLessons    int      `dynamodbav:"totalLessons,omitempty" json:"totalLessons,omitempty"`
	ProgressPercent float64  `dynamodbav:"progressPercent,omitempty" json:"progressPercent,omitempty"`
	ModuleID        string   `dynamodbav:"moduleId,omitempty" json:"moduleId,omitempty"`
	DurationMinutes int      `dynamodbav:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Minutes         int      `dynamodbav:"minutes,omitempty" json:"minutes,omitempty"`
}

// Querier — минимальный интерфейс чтения по диапазону ключей.
// Обе операции возвращают пустой (не nil) срез при отсутствии совпадений
// и отдают ошибку хранилища без повторных попыток
type Querier interface {
	// QueryByPrefix возвращает записи партиции, чей sort key начинается
	// с префикса, в порядке ключей (descending — в обратном порядке)
	QueryByPrefix(ctx context.Context, pk, skPrefix string, descending bool) ([]Item, error)
	// QueryByRange возвращает записи партиции с sort key в диапазоне
	// [skFrom, skTo] включительно, по возрастанию
	QueryByRange(ctx context.Context, pk, skFrom, skTo string) ([]Item, error)
}

// Open выбирает драйвер хранилища по конфигурации
func Open(ctx context.Context, cfg *config.Config) (Querier, error) {
	switch cfg.StoreDriver {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedisStore(client), nil
	case "dynamo":
		return NewDynamoStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
