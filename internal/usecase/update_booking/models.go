package update_booking

import "time"

// Request модель запроса на изменение бронирования
// Все поля бронирования перезаписываются
type Request struct {
	ID        string    // ID бронирования
	CourtID   string    // ID корта
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота (не включается)
	Status    string    // Статус, по умолчанию pending
}
