package get_upcoming_bookings

import "time"

// Request модель запроса. Пользователь берётся из контекста
type Request struct{}

// Response список предстоящих бронирований, начиная с начала текущего дня (UTC)
type Response struct {
	From     time.Time `json:"from"`
	Bookings []Booking `json:"bookings"`
}

// Booking бронирование с ответами участников и статистикой по слоту
type Booking struct {
	ID         string    `json:"id"`
	CourtID    string    `json:"courtId"`
	CourtName  string    `json:"courtName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	Responses  []Answer  `json:"responses"`
	MyResponse *Answer   `json:"myResponse,omitempty"` // Ответ текущего пользователя, если есть
	Stats      Stats     `json:"stats"`
}

// Answer ответ пользователя о вероятности участия
type Answer struct {
	UserID      string `json:"userId"`
	Probability int    `json:"probability"`
}

// Stats статистика ответов по слоту
type Stats struct {
	ResponseCount      int `json:"responseCount"`
	AvailableCount     int `json:"availableCount"`
	UnavailableCount   int `json:"unavailableCount"`
	AverageProbability int `json:"averageProbability"`
}
