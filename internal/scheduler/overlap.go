package scheduler

import "time"

// Overlaps reports whether the two time windows share at least one instant.
// Comparison is strict on both sides, so windows that merely touch (one ends
// exactly when the other begins) do not overlap. This permits back-to-back
// scheduling with zero turnaround on the same track segment.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}
