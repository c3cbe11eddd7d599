package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CourtID   string    // ID корта
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота (не включается)
	Status    string    // Статус, по умолчанию pending
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	CourtID   string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
