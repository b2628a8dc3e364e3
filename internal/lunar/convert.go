package lunar

import (
	"fmt"
	"time"
)

// InvalidLunarDateError reports a lunar date that cannot exist in the
// encoded table (wrong leap flag, or day overflowing the month length).
type InvalidLunarDateError struct {
	Reason string
}

func (e *InvalidLunarDateError) Error() string {
	return "lunar: invalid lunar date: " + e.Reason
}

// OutOfRangeError reports a year outside [FirstYear, LastYear].
type OutOfRangeError struct {
	Year int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("lunar: year %d out of range [%d, %d]", e.Year, FirstYear, LastYear)
}

// Date is a lunar calendar date: year, month (1..12), day (1..30), and
// whether month is the year's leap insertion. IsLeap=true is valid only
// if the encoded year-record marks this month as the leap insertion.
type Date struct {
	Year   int
	Month  int
	Day    int
	IsLeap bool
}

// springFestivalOffset caches each year's lunar-new-year civil date, derived
// once from Epoch and the lunarInfo table rather than hand-transcribed
// (see DESIGN.md): springFestivalOffset[y-FirstYear] holds days-since-Epoch to
// that year's first lunar day.
var springFestivalOffset [LastYear - FirstYear + 2]int

func init() {
	offset := 0
	for y := FirstYear; y <= LastYear; y++ {
		springFestivalOffset[y-FirstYear] = offset
		offset += yearDays(y)
	}
}

// newYearCivilDate returns the civil date (at local midnight) of lunar
// year y's first day.
func newYearCivilDate(y int) time.Time {
	return Epoch.AddDate(0, 0, springFestivalOffset[y-FirstYear])
}

// SpringFestival returns the packed month*100+day civil date of lunar
// year y's new year.
func SpringFestival(y int) (int, error) {
	if y < FirstYear || y > LastYear {
		return 0, &OutOfRangeError{Year: y}
	}
	d := newYearCivilDate(y)
	return int(d.Month())*100 + d.Day(), nil
}

// SolarToLunar converts a civil (Gregorian) midnight-anchored date to its
// lunar calendar equivalent.
func SolarToLunar(date time.Time) (Date, error) {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(Epoch) {
		return Date{}, &OutOfRangeError{Year: date.Year()}
	}

	totalOffset := int(date.Sub(Epoch).Hours() / 24)

	// Locate the lunar year containing this offset.
	lunarYear := FirstYear
	for lunarYear < LastYear && totalOffset >= springFestivalOffset[lunarYear-FirstYear+1] {
		lunarYear++
	}
	if lunarYear > LastYear {
		return Date{}, &OutOfRangeError{Year: date.Year()}
	}

	remaining := totalOffset - springFestivalOffset[lunarYear-FirstYear]

	lm := leapMonth(lunarYear)
	for m := 1; m <= 12; m++ {
		length := monthDays(lunarYear, m)
		if remaining < length {
			return Date{Year: lunarYear, Month: m, Day: remaining + 1, IsLeap: false}, nil
		}
		remaining -= length

		if m == lm {
			ld := leapDays(lunarYear)
			if remaining < ld {
				return Date{Year: lunarYear, Month: m, Day: remaining + 1, IsLeap: true}, nil
			}
			remaining -= ld
		}
	}
	return Date{}, fmt.Errorf("lunar: failed to resolve offset %d within year %d", totalOffset, lunarYear)
}

// LunarToSolar converts a lunar calendar date back to its civil
// equivalent. Fails with InvalidLunarDateError if the
// leap flag or day is inconsistent with the encoded table, or
// OutOfRangeError if the year is outside [FirstYear, LastYear].
func LunarToSolar(d Date) (time.Time, error) {
	if d.Year < FirstYear || d.Year > LastYear {
		return time.Time{}, &OutOfRangeError{Year: d.Year}
	}
	if d.Month < 1 || d.Month > 12 {
		return time.Time{}, &InvalidLunarDateError{Reason: fmt.Sprintf("month %d out of range", d.Month)}
	}

	lm := leapMonth(d.Year)
	if d.IsLeap && d.Month != lm {
		return time.Time{}, &InvalidLunarDateError{
			Reason: fmt.Sprintf("year %d has no leap month %d (leap month is %d)", d.Year, d.Month, lm),
		}
	}

	offset := springFestivalOffset[d.Year-FirstYear]
	for m := 1; m < d.Month; m++ {
		offset += monthDays(d.Year, m)
		if m == lm {
			offset += leapDays(d.Year)
		}
	}
	if d.IsLeap {
		offset += monthDays(d.Year, d.Month)
	}

	maxDay := monthDays(d.Year, d.Month)
	if d.IsLeap {
		maxDay = leapDays(d.Year)
	}
	if d.Day < 1 || d.Day > maxDay {
		return time.Time{}, &InvalidLunarDateError{
			Reason: fmt.Sprintf("day %d exceeds month length %d", d.Day, maxDay),
		}
	}
	offset += d.Day - 1

	return Epoch.AddDate(0, 0, offset), nil
}
