package update_court

import "context"

type CourtService interface {
	Update(ctx context.Context, id, name string) error
}

type AccessChecker interface {
	RequireAdmin(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
