package datagen

import "time"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// Date builds a UTC date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleDate picks a year by proportional weights, then a month in 1..12
// and a day in 1..28 so every draw is a valid date.
func SampleDate(f *Faker, years []int, weights []float64) time.Time {
	year := ChooseProportional(f, years, weights)
	return Date(year, time.Month(f.Int(1, 12)), f.Int(1, 28))
}

// YearRange returns the years from first to last inclusive.
func YearRange(first, last int) []int {
	years := make([]int, 0, last-first+1)
	for y := first; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

// Window is an inclusive analysis period.
type Window struct {
	Start time.Time
	End   time.Time
}

// MonthsInWindow clips [start, end] to the window and returns the first
// day of every month from the clipped start month to the clipped end
// month, inclusive. A nil end means the entity is still active. The result
// is empty when the clipped range is empty.
func MonthsInWindow(start time.Time, end *time.Time, w Window) []time.Time {
	from := MaxDate(DateOnly(start), DateOnly(w.Start))
	to := DateOnly(w.End)
	if end != nil {
		to = MinDate(DateOnly(*end), to)
	}
	if from.After(to) {
		return nil
	}

	var months []time.Time
	last := MonthStart(to)
	for m := MonthStart(from); !m.After(last); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// DateKey collapses t to the integer key YYYYMMDD of its month's first day.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + 1
}
