package astronomy

import (
	"fmt"
	"math"
	"time"
)

// SolarTermNames lists the 24 terms in their fixed order, index 0 is Minor
// Cold (小寒) at 285° apparent solar longitude; indices advance by 15°.
var SolarTermNames = []string{
	"Minor Cold", "Major Cold", "Start of Spring", "Rain Water",
	"Insects Awaken", "Spring Equinox", "Clear and Bright", "Grain Rain",
	"Start of Summer", "Grain Buds", "Grain in Ear", "Summer Solstice",
	"Minor Heat", "Major Heat", "Start of Autumn", "End of Heat",
	"White Dew", "Autumn Equinox", "Cold Dew", "Frost Descent",
	"Start of Winter", "Minor Snow", "Major Snow", "Winter Solstice",
}

// IsJie reports whether solar term index idx is a "jie" (sectional term,
// even index) as opposed to a "qi" (median term, odd index).
func IsJie(idx int) bool { return idx%2 == 0 }

// targetLongitudeDegrees returns the apparent solar longitude target, in
// degrees, for solar term index idx (0..23): 285, 300, ..., 270.
func targetLongitudeDegrees(idx int) float64 {
	return math.Mod(285+float64(idx)*15, 360)
}

// OutOfRangeError reports a value outside its documented domain.
type OutOfRangeError struct {
	Field string
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("astronomy: %s out of range: %d", e.Field, e.Value)
}

// SolarTerm pairs a term index with the civil instant (UTC+8) at which the
// apparent solar longitude crosses its target.
type SolarTerm struct {
	Index   int
	Instant time.Time
}

// cst is the fixed +08:00 offset every solar-term instant is rendered in.
// The underlying absolute instant is unchanged; only the civil fields a
// caller reads off it are Beijing clock fields. The offset is carried
// explicitly, never punned through a UTC-typed value.
var cst = time.FixedZone("+08:00", 8*3600)

// SolarTermInstant locates, by Newton iteration, the civil instant (in the
// fixed +08:00 offset used throughout the pillar layer) at which the
// apparent solar longitude reaches the target for term index idx in civil
// year. It fails with OutOfRangeError if idx is not in [0, 23].
func SolarTermInstant(year, idx int) (time.Time, error) {
	if idx < 0 || idx > 23 {
		return time.Time{}, &OutOfRangeError{Field: "solar term index", Value: idx}
	}

	target := targetLongitudeDegrees(idx)

	// Initial estimate: day 5 of the year plus idx * (365.25/24) days,
	// expressed as a Julian Day at 0h UT.
	jd0 := JulianDay(year, 1, 1, 0, 0, 0, 0) + 5 + float64(idx)*(365.25/24)

	jd := jd0
	for i := 0; i < 50; i++ {
		decYear := float64(year) + float64(idx)/24
		dt := DeltaT(decYear)
		jde := jd + dt/86400

		lon := ApparentSolarLongitude(jde) * 180 / math.Pi

		delta := target - lon
		// wrap to (-180, 180]
		for delta > 180 {
			delta -= 360
		}
		for delta <= -180 {
			delta += 360
		}

		if math.Abs(delta) < 1e-5 {
			break
		}
		jd += delta / 360 * 365.25
	}

	// jd holds the UT Julian Day (the loop solves for UT, converting to JDE
	// only inside the longitude evaluation); convert to the civil date and
	// render it in the +08:00 offset.
	cd := CalendarFromJD(jd)
	ut := time.Date(cd.Year, time.Month(cd.Month), cd.Day, cd.Hour, cd.Minute, cd.Second,
		int(cd.Millisecond*1e6), time.UTC)
	return ut.In(cst), nil
}

// AllSolarTerms returns the 24 solar terms for civil year Y, sorted by
// instant. Contains every term index exactly once.
func AllSolarTerms(year int) ([]SolarTerm, error) {
	terms := make([]SolarTerm, 24)
	for i := 0; i < 24; i++ {
		instant, err := SolarTermInstant(year, i)
		if err != nil {
			return nil, err
		}
		terms[i] = SolarTerm{Index: i, Instant: instant}
	}
	return terms, nil
}

// PriorAndNextJie returns the latest jie (even-index term) whose instant is
// <= the given instant, and the next jie after it, searching the adjacent
// civil years to stay correct near year boundaries.
func PriorAndNextJie(instant time.Time) (prior, next SolarTerm, err error) {
	year := instant.Year()

	var all []SolarTerm
	for _, y := range []int{year - 1, year, year + 1} {
		yearTerms, e := AllSolarTerms(y)
		if e != nil {
			return SolarTerm{}, SolarTerm{}, e
		}
		for _, t := range yearTerms {
			if IsJie(t.Index) {
				all = append(all, t)
			}
		}
	}

	for i := 0; i < len(all); i++ {
		if i+1 < len(all) && !all[i].Instant.After(instant) && all[i+1].Instant.After(instant) {
			return all[i], all[i+1], nil
		}
	}
	return SolarTerm{}, SolarTerm{}, fmt.Errorf("astronomy: no jie bracket found for %v", instant)
}
