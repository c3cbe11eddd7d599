package overlap

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Checker проверяет, пересекается ли слот с существующими бронированиями корта
// Интервалы полуоткрытые: бронирование, которое заканчивается ровно в момент начала другого, не пересекается с ним
// Порядок start < end проверяет вызывающий код
type Checker struct {
	bookingRepo BookingRepository
}

// NewChecker создает новый экземпляр проверки пересечений
func NewChecker(bookingRepo BookingRepository) *Checker {
	return &Checker{bookingRepo: bookingRepo}
}

// HasOverlap возвращает true, если на корте есть хотя бы одно пересекающееся бронирование
// Бронирование с ID candidate.ExcludeID не учитывается
func (c *Checker) HasOverlap(ctx context.Context, candidate domain.OverlapCandidate) (bool, error) {
	ids, err := c.bookingRepo.FindOverlapping(ctx, candidate)
	if err != nil {
		return false, fmt.Errorf("HasOverlap - court=%s: %w", candidate.CourtID, err)
	}
	return len(ids) > 0, nil
}
