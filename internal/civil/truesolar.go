// Package civil implements the L1 layer: true-solar-time reduction
// (equation of time + longitude offset) and the DST correction window
// table.
package civil

import (
	"math"
	"time"
)

// EquationOfTime returns the Equation of Time in minutes for the given
// day-of-year (1..366): B = 2π(d-81)/365.25;
// EoT = 9.87 sin(2B) - 7.53 cos(B) - 1.5 sin(B). Range ~[-15, +17].
func EquationOfTime(dayOfYear int) float64 {
	b := 2 * math.Pi * (float64(dayOfYear) - 81) / 365.25
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// TrueSolarReduction bundles the original civil instant, the true-solar
// reduced instant, and the two correction components that produced it.
// Invariant: ReducedInstant = OriginalInstant + (LongitudeOffsetMinutes +
// EquationOfTimeMinutes) * 60s.
type TrueSolarReduction struct {
	OriginalInstant        time.Time
	ReducedInstant         time.Time
	LongitudeOffsetMinutes float64
	EquationOfTimeMinutes  float64
}

// Reduce computes the true-solar-time reduction of a civil instant at the
// given east-positive longitude in degrees.
func Reduce(instant time.Time, longitude float64) TrueSolarReduction {
	longitudeOffset := (longitude - 120) * 4
	eot := EquationOfTime(instant.YearDay())
	totalSeconds := (longitudeOffset + eot) * 60
	reduced := instant.Add(time.Duration(totalSeconds * float64(time.Second)))
	return TrueSolarReduction{
		OriginalInstant:        instant,
		ReducedInstant:         reduced,
		LongitudeOffsetMinutes: longitudeOffset,
		EquationOfTimeMinutes:  eot,
	}
}
