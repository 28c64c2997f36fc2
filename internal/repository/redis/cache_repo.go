package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jimlawless/whereami"
	config "github.com/lumera-shop/catalog-backend/internal/cfg"
	"github.com/lumera-shop/catalog-backend/internal/repository/redis/converter"
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/clients"
	"github.com/lumera-shop/catalog-backend/pkg/e"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
)

// CacheRepo кэширует агрегаты рейтинга товаров в Redis.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.RatingAggConverter
	cfg    *config.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.RatingAggConverter,
	cfg *config.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetRatings возвращает закэшированные агрегаты по ID товаров,
// игнорируя промахи и логируя битые записи.
func (r *CacheRepo) GetRatings(ctx context.Context, ids []int64) (map[int64]usecase.RatingAgg, error) {
	keys := r.buildRatingCacheKeys(ids)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[int64]usecase.RatingAgg, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		model, err := r.unmarshalRatingFromCache(data)
		if err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ProductID != ids[i] {
			r.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", ids[i], model.ProductID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[ids[i]] = r.conv.ToUseCase(model)
	}

	return result, nil
}

// SetRatings атомарно кэширует несколько агрегатов с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetRatings(ctx context.Context, aggs map[int64]usecase.RatingAgg) error {
	pipeline := r.client.Client.Pipeline()
	for id, agg := range aggs {
		model := r.conv.ToRedisModel(agg)
		model.ProductID = id

		data, err := r.marshalRatingForCache(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal rating for caching (Product ID: %d): %v", id, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		pipeline.Set(ctx, r.ratingKey(id), data, r.cfg.RatingTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalRatingForCache сериализует агрегат в JSON для кэша
func (r *CacheRepo) marshalRatingForCache(model converter.RatingAggRedisModel) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalRatingFromCache десериализует JSON из кэша в модель агрегата
func (r *CacheRepo) unmarshalRatingFromCache(data []byte) (*converter.RatingAggRedisModel, error) {
	var model converter.RatingAggRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// buildRatingCacheKeys формирует Redis-ключи из ID товаров
func (r *CacheRepo) buildRatingCacheKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.ratingKey(id)
	}

	return keys
}

// ratingKey возвращает Redis-ключ агрегата одного товара
func (r *CacheRepo) ratingKey(id int64) string {
	return fmt.Sprintf("rating:%d", id)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
