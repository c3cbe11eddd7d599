package domain

import "time"

// Availability is one user's stated probability of attending a booking
// There is at most one response per (BookingID, UserID)
type Availability struct {
	BookingID   string
	UserID      string
	Probability int // 0..100
	UpdatedAt   time.Time
}
