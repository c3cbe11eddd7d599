package views

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Представления, которые кэшируются и сбрасываются после изменений
const (
	Bookings    = "/bookings"
	Admin       = "/admin"
	AdminCourts = "/admin/courts"
)

const keyPrefix = "courts:view:"

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
	resultStale = "stale"
)

// errStale запись отброшена: представление сбросили после чтения версии
var errStale = errors.New("views.cache: view invalidated since read")

// Cache кэш отрисованных представлений в redis
// Каждое представление хранится в отдельном hash, поле hash - область (пользователь и дата, "all")
// Рядом с hash лежит счётчик версии представления. Сброс удаляет hash и увеличивает версию,
// а Set пишет только если версия не изменилась с момента Get
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics MetricsRecorder
}

// NewCache создает кэш представлений. metrics может быть nil
func NewCache(client *redis.Client, ttl time.Duration, metrics MetricsRecorder) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
	}
}

func viewKey(view string) string {
	return keyPrefix + view
}

func versionKey(view string) string {
	return keyPrefix + view + ":version"
}

// Get читает закэшированное представление в dest и текущую версию представления
// Возвращает false, если представления нет в кэше. Версию нужно передать в Set после загрузки из БД
func (c *Cache) Get(ctx context.Context, view, scope string, dest interface{}) (bool, int64, error) {
	var versionCmd, dataCmd *redis.StringCmd
	// Ошибки проверяются по каждой команде: redis.Nil для них штатный результат
	_, _ = c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		versionCmd = pipe.Get(ctx, versionKey(view))
		dataCmd = pipe.HGet(ctx, viewKey(view), scope)
		return nil
	})

	version, err := versionCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.observe(view, resultError)
		return false, 0, fmt.Errorf("%w: Get - version of view=%s: %v", ErrCacheRead, view, err)
	}

	data, err := dataCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(view, resultMiss)
		return false, version, nil
	}
	if err != nil {
		c.observe(view, resultError)
		return false, 0, fmt.Errorf("%w: Get - view=%s: %v", ErrCacheRead, view, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.observe(view, resultError)
		return false, version, fmt.Errorf("%w: Get - decode view=%s: %v", ErrCodec, view, err)
	}

	c.observe(view, resultHit)
	return true, version, nil
}

// Set сохраняет представление для области scope, если версия представления всё ещё равна version
// Если представление успели сбросить, запись молча пропускается
func (c *Cache) Set(ctx context.Context, view, scope string, version int64, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set - encode view=%s: %v", ErrCodec, view, err)
	}

	key, vKey := viewKey(view), versionKey(view)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, scope, data)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, vKey)

	switch {
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		c.observe(view, resultStale)
		return nil
	case err != nil:
		return fmt.Errorf("%w: Set - view=%s: %v", ErrCacheWrite, view, err)
	}

	return nil
}

// Invalidate сбрасывает все области перечисленных представлений и увеличивает их версии
func (c *Cache) Invalidate(ctx context.Context, views ...string) error {
	if len(views) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, view := range views {
			pipe.Incr(ctx, versionKey(view))
			pipe.Del(ctx, viewKey(view))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v: %v", ErrCacheInvalidate, views, err)
	}

	return nil
}

func (c *Cache) observe(view, result string) {
	if c.metrics != nil {
		c.metrics.ObserveCacheLookup(view, result)
	}
}

// Noop кэш, который ничего не хранит. Используется, когда redis отключен в конфиге
type Noop struct{}

func (Noop) Get(context.Context, string, string, interface{}) (bool, int64, error) {
	return false, 0, nil
}

func (Noop) Set(context.Context, string, string, int64, interface{}) error { return nil }

func (Noop) Invalidate(context.Context, ...string) error { return nil }
