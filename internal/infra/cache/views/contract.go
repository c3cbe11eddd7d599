package views

import "context"

// MetricsRecorder фиксирует результат обращения к кэшу (hit, miss, error, stale)
type MetricsRecorder interface {
	ObserveCacheLookup(view string, result string)
}

// Store общий интерфейс Cache и Noop
type Store interface {
	Get(ctx context.Context, view, scope string, dest interface{}) (bool, int64, error)
	Set(ctx context.Context, view, scope string, version int64, value interface{}) error
	Invalidate(ctx context.Context, views ...string) error
}

var (
	_ Store = (*Cache)(nil)
	_ Store = Noop{}
)
