package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// CourtResponse корт в расписании администратора
type CourtResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingResponse бронирование в расписании администратора
type BookingResponse struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"courtId"`
	CourtName string    `json:"courtName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// ScheduleResponse данные для календаря администратора
// Корты отсортированы по названию, бронирования по времени начала
type ScheduleResponse struct {
	Courts   []CourtResponse   `json:"courts"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.BookingWithCourt в BookingResponse
func FromDomainBooking(b *domain.BookingWithCourt) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		CourtName: b.CourtName,
		StartTime: b.StartTime.UTC(),
		EndTime:   b.EndTime.UTC(),
		Status:    string(b.Status),
	}
}

// FromDomainSchedule собирает расписание из кортов и бронирований
func FromDomainSchedule(courts []*domain.Court, bookings []*domain.BookingWithCourt) *ScheduleResponse {
	response := &ScheduleResponse{
		Courts:   make([]CourtResponse, 0, len(courts)),
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, court := range courts {
		response.Courts = append(response.Courts, CourtResponse{ID: court.ID, Name: court.Name})
	}

	for _, booking := range bookings {
		response.Bookings = append(response.Bookings, FromDomainBooking(booking))
	}

	return response
}
