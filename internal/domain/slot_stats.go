package domain

import "math"

// SlotStats summarizes the availability responses for one booking
type SlotStats struct {
	ResponseCount      int
	AvailableCount     int // probability > 0
	UnavailableCount   int // probability == 0
	AverageProbability int
}

// ComputeStats aggregates responses for a single slot.
// The average is rounded half up and is 0 when there are no responses.
// Values are not clamped; validation happens when responses are written.
func ComputeStats(responses []Availability) SlotStats {
	stats := SlotStats{ResponseCount: len(responses)}
	if stats.ResponseCount == 0 {
		return stats
	}

	sum := 0
	for _, r := range responses {
		switch {
		case r.Probability > 0:
			stats.AvailableCount++
		case r.Probability == 0:
			stats.UnavailableCount++
		}
		sum += r.Probability
	}

	stats.AverageProbability = int(math.Floor(float64(sum)/float64(stats.ResponseCount) + 0.5))
	return stats
}
