package access

import "errors"

var (
	// ErrUnauthenticated возвращается, когда в запросе нет пользователя
	ErrUnauthenticated = errors.New("access: authentication required")

	// ErrAdminRequired возвращается, когда пользователь не администратор
	ErrAdminRequired = errors.New("access: admin access required")
)
