package myenergi

import (
	"iter"
	"time"
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the days of the range in ascending order, Start and End
// included. The sequence is empty when Start is after End, and each call
// walks the range from the beginning again.
func (r DateRange) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Year returns the range covering the whole of the given calendar year.
func Year(y int) DateRange {
	return DateRange{
		Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
