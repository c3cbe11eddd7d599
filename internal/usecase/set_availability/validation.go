package set_availability

import (
	"math"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// validateProbability проверяет, что вероятность конечна и лежит в [0, 100]
func validateProbability(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return ErrInvalidProbability
	}

	if p < domain.MinProbability || p > domain.MaxProbability {
		return ErrInvalidProbability
	}

	return nil
}

// roundProbability округляет половину вверх: 49.5 -> 50
func roundProbability(p float64) int {
	return int(math.Floor(p + 0.5))
}
