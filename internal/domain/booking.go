package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a reserved slot on a court
type Booking struct {
	ID        string
	CourtID   string
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the half-open time range [StartTime, EndTime) of the booking
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingWithCourt is a booking joined with the name of its court
type BookingWithCourt struct {
	Booking
	CourtName string
}

// BookingsFilter filters booking listings
type BookingsFilter struct {
	From *time.Time // start_time >= From (optional)
}

// OverlapCandidate describes a slot that is about to be written
// ExcludeID is set on update so the booking is not compared against itself
type OverlapCandidate struct {
	CourtID   string
	StartTime time.Time
	EndTime   time.Time
	ExcludeID string
}

// Interval returns the candidate's half-open time range
func (c OverlapCandidate) Interval() Interval {
	return Interval{Start: c.StartTime, End: c.EndTime}
}
