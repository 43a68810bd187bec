package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dsa_roadmap_backend/internal/model"
	"dsa_roadmap_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// KeyValueStore is the persistence seam for all user state: profile, quiz
// session, results, roadmap progress and bookmark sets. Values are JSON
// documents addressed by namespaced string keys. Load reports found=false on
// a miss; decode failures are logged and degrade to a miss rather than
// propagate, so callers always fall back to their default value.
type KeyValueStore interface {
	Save(ctx context.Context, key string, value interface{}) error
	Load(ctx context.Context, key string, dest interface{}) (bool, error)
	Remove(ctx context.Context, key string) error
	// Clear removes every key under the given prefix.
	Clear(ctx context.Context, prefix string) error
}

const kvCachePrefix = "kv_cache:"

// KVRepository stores entries in MySQL with a Redis read-through cache. The
// cache is invalidated on every write; a nil Redis client disables caching.
type KVRepository struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewKVRepository(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *KVRepository {
	return &KVRepository{DB: db, Redis: rdb, CacheTTL: cacheTTL}
}

func (r *KVRepository) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := model.KVEntry{Key: key, Value: raw}
	if err := r.DB.WithContext(ctx).Save(&entry).Error; err != nil {
		return err
	}

	if r.Redis != nil {
		if err := r.Redis.Del(ctx, kvCachePrefix+key).Err(); err != nil {
			logger.Log.Warn("kv cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

func (r *KVRepository) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	if r.Redis != nil && r.CacheTTL > 0 {
		val, err := r.Redis.Get(ctx, kvCachePrefix+key).Bytes()
		if err == nil {
			if err := json.Unmarshal(val, dest); err == nil {
				return true, nil
			}
			// A corrupt cache entry is dropped and the row re-read.
			r.Redis.Del(ctx, kvCachePrefix+key)
		}
	}

	var entry model.KVEntry
	err := r.DB.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		logger.Log.Error("kv entry is not valid JSON, falling back to default",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}

	if r.Redis != nil && r.CacheTTL > 0 {
		if err := r.Redis.Set(ctx, kvCachePrefix+key, []byte(entry.Value), r.CacheTTL).Err(); err != nil {
			logger.Log.Warn("kv cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return true, nil
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	if err := r.DB.WithContext(ctx).Delete(&model.KVEntry{}, "`key` = ?", key).Error; err != nil {
		return err
	}
	if r.Redis != nil {
		r.Redis.Del(ctx, kvCachePrefix+key)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context, prefix string) error {
	var keys []string
	if err := r.DB.WithContext(ctx).Model(&model.KVEntry{}).
		Where("`key` LIKE ?", prefix+"%").Pluck("`key`", &keys).Error; err != nil {
		return err
	}

	if err := r.DB.WithContext(ctx).Delete(&model.KVEntry{}, "`key` LIKE ?", prefix+"%").Error; err != nil {
		return err
	}

	if r.Redis != nil {
		for _, k := range keys {
			r.Redis.Del(ctx, kvCachePrefix+k)
		}
	}
	return nil
}
