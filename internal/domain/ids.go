package domain

import "github.com/google/uuid"

// IsValidID reports whether id can refer to a stored record
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
