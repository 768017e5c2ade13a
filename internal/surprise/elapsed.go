package surprise

import "time"

// Elapsed is the calendar distance between a couple's start date and now,
// as shown by the page counter.
type Elapsed struct {
	Years, Months, Days     int
	Hours, Minutes, Seconds int
}

// Since computes the calendar difference from start to now. Whole months
// are counted with time.AddDate, the remainder is split into days and clock
// units. A start in the future yields the zero value.
func Since(start, now time.Time) Elapsed {
	if !now.After(start) {
		return Elapsed{}
	}
	start = start.In(now.Location())

	y1, m1, _ := start.Date()
	y2, m2, _ := now.Date()
	months := (y2-y1)*12 + int(m2-m1)

	anchor := start.AddDate(0, months, 0)
	for months > 0 && anchor.After(now) {
		months--
		anchor = start.AddDate(0, months, 0)
	}

	rest := now.Sub(anchor)
	days := int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour

	return Elapsed{
		Years:   months / 12,
		Months:  months % 12,
		Days:    days,
		Hours:   int(rest / time.Hour),
		Minutes: int(rest % time.Hour / time.Minute),
		Seconds: int(rest % time.Minute / time.Second),
	}
}
