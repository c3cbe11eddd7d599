package views

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из redis
	ErrCacheRead = errors.New("views.cache: failed to read view")

	// ErrCacheWrite возвращается при ошибке записи в redis
	ErrCacheWrite = errors.New("views.cache: failed to write view")

	// ErrCacheInvalidate возвращается при ошибке сброса представлений
	ErrCacheInvalidate = errors.New("views.cache: failed to invalidate views")

	// ErrCodec возвращается при ошибке сериализации представления
	ErrCodec = errors.New("views.cache: failed to encode view")
)
