// Package astronomy implements the L0 layer of the engine: Julian day
// conversions, the ΔT model, a reduced VSOP87 Earth series, IAU-1980
// nutation, and the Newton solver that locates solar-term instants.
//
// Every function here is a pure function of its arguments: no package-level
// mutable state, no I/O, safe for concurrent use.
package astronomy

import "math"

// JulianDay converts a proleptic-Gregorian calendar date/time to a Julian
// Day number, using the standard Meeus algorithm (Astronomical Algorithms,
// ch. 7). hour/minute/second/millisecond are summed into the fractional
// day before the floor, so sub-second precision is preserved exactly.
func JulianDay(year, month, day, hour, minute, second int, millisecond float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	dayFrac := float64(day) +
		(float64(hour) + float64(minute)/60 + (float64(second)+millisecond/1000)/3600) / 24

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*(float64(m)+1)) +
		dayFrac + b - 1524.5
	return jd
}

// CalendarDate is a decomposed Gregorian calendar date/time with
// sub-second precision, the inverse of JulianDay.
type CalendarDate struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Millisecond          float64
}

// CalendarFromJD converts a Julian Day number back to a Gregorian calendar
// date/time (Meeus, ch. 7, inverse algorithm). The time of day is rounded
// to the nearest millisecond, so floating-point error in the day fraction
// does not turn a whole minute into the last instant of the one before.
func CalendarFromJD(jd float64) CalendarDate {
	jd += 0.5
	z := math.Floor(jd)
	msOfDay := math.Round((jd - z) * 86400000)
	if msOfDay >= 86400000 {
		z++
		msOfDay -= 86400000
	}

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)

	var month float64
	if e < 14 {
		month = e - 1
	} else {
		month = e - 13
	}
	var year float64
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	hour := math.Floor(msOfDay / 3600000)
	msOfDay -= hour * 3600000
	minute := math.Floor(msOfDay / 60000)
	msOfDay -= minute * 60000
	second := math.Floor(msOfDay / 1000)
	ms := msOfDay - second*1000

	return CalendarDate{
		Year: int(year), Month: int(month), Day: int(day),
		Hour: int(hour), Minute: int(minute), Second: int(second),
		Millisecond: ms,
	}
}

// JulianCentury is the number of days in a Julian century, used to convert
// a Julian Day difference into centuries from an epoch.
const JulianCentury = 36525.0

// J2000 is the Julian Day of the standard epoch J2000.0.
const J2000 = 2451545.0

// CenturiesSinceJ2000 returns T, Julian centuries from J2000.0, for the
// dynamical-time Julian Day jde.
func CenturiesSinceJ2000(jde float64) float64 {
	return (jde - J2000) / JulianCentury
}
