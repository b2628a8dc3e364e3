package astronomy

import (
	"math"
	"testing"
)

func TestJulianDayRoundTrip(t *testing.T) {
	cases := []struct{ y, mo, d, h, mi, s int }{
		{2000, 1, 1, 12, 0, 0},
		{1984, 2, 4, 23, 19, 0},
		{2100, 12, 31, 0, 0, 0},
		{1900, 1, 31, 0, 0, 0},
	}
	for _, c := range cases {
		jd := JulianDay(c.y, c.mo, c.d, c.h, c.mi, c.s, 0)
		cd := CalendarFromJD(jd)
		if cd.Year != c.y || cd.Month != c.mo || cd.Day != c.d || cd.Hour != c.h || cd.Minute != c.mi {
			t.Errorf("round trip mismatch for %+v: got %+v (jd=%f)", c, cd, jd)
		}
	}
}

func TestJulianDayKnownEpoch(t *testing.T) {
	// J2000.0 = 2000-01-01 12:00 UT = JD 2451545.0
	jd := JulianDay(2000, 1, 1, 12, 0, 0, 0)
	if math.Abs(jd-2451545.0) > 1e-9 {
		t.Errorf("JD for J2000.0 epoch = %f, want 2451545.0", jd)
	}
}

func TestDeltaTContinuousAtBoundaries(t *testing.T) {
	boundaries := []float64{1900, 1920, 1941, 1961, 1986, 2005, 2050, 2150}
	for _, b := range boundaries {
		before := DeltaT(b - 0.01)
		after := DeltaT(b + 0.01)
		if math.Abs(before-after) > 5 {
			t.Errorf("DeltaT discontinuity at year %v: %f vs %f", b, before, after)
		}
	}
}

func TestAllSolarTermsCompleteness(t *testing.T) {
	for _, y := range []int{1901, 1950, 1984, 2000, 2024, 2100} {
		terms, err := AllSolarTerms(y)
		if err != nil {
			t.Fatalf("AllSolarTerms(%d): %v", y, err)
		}
		if len(terms) != 24 {
			t.Fatalf("year %d: got %d terms, want 24", y, len(terms))
		}
		seen := map[int]bool{}
		for i, term := range terms {
			if seen[term.Index] {
				t.Errorf("year %d: duplicate term index %d", y, term.Index)
			}
			seen[term.Index] = true
			if i > 0 && !term.Instant.After(terms[i-1].Instant) {
				t.Errorf("year %d: terms not strictly increasing at index %d", y, i)
			}
		}
	}
}

func TestSolarTermInstantOutOfRange(t *testing.T) {
	if _, err := SolarTermInstant(2024, -1); err == nil {
		t.Error("expected error for index -1")
	}
	if _, err := SolarTermInstant(2024, 24); err == nil {
		t.Error("expected error for index 24")
	}
}

func TestPriorAndNextJieBrackets(t *testing.T) {
	terms, err := AllSolarTerms(2024)
	if err != nil {
		t.Fatal(err)
	}
	var startOfSpringJie SolarTerm
	for _, term := range terms {
		if term.Index == 2 {
			startOfSpringJie = term
		}
	}
	prior, next, err := PriorAndNextJie(startOfSpringJie.Instant.Add(1))
	if err != nil {
		t.Fatal(err)
	}
	if !IsJie(prior.Index) || !IsJie(next.Index) {
		t.Error("both bracket terms should be jie (even index)")
	}
	if next.Instant.Before(prior.Instant) {
		t.Error("next jie should not precede prior jie")
	}
}
