package domain

import "time"

// Court represents a bookable court
type Court struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
