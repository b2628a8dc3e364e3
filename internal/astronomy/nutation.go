package astronomy

import "math"

const arcsecToRad = math.Pi / (180 * 3600)

// nutationTerm is one row of the IAU-1980 nutation series: the five
// fundamental-argument multipliers {D, M, M', F, Ω} and the sine and
// cosine coefficients (each with its per-century slope) in units of 1e-4
// arcsecond. The sine pair drives nutation in longitude (Δψ), the cosine
// pair nutation in obliquity (Δε).
type nutationTerm struct {
	d, m, mp, f, omega float64
	sinCoeff, sinT     float64
	cosCoeff, cosT     float64
}

// nutationTable1980 is the full 63-row IAU-1980 table (Meeus, ch. 22,
// table 22.A), carried bit-exact and summed in declared order so that
// repeated evaluations are bitwise identical.
var nutationTable1980 = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, 7, 0, -3, 0},
	{-2, 1, 1, 0, 0, -7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, 0, 0},
	{-2, 1, 0, 2, 1, 4, 0, 0, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -4, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// fundamentalArguments returns the five IAU-1980 fundamental arguments
// D, M, M', F, Ω in degrees for Julian centuries T from J2000.0.
func fundamentalArguments(t float64) (d, m, mp, f, omega float64) {
	d = math.Mod(297.85036+445267.111480*t-0.0019142*t*t+t*t*t/189474, 360)
	m = math.Mod(357.52772+35999.050340*t-0.0001603*t*t-t*t*t/300000, 360)
	mp = math.Mod(134.96298+477198.867398*t+0.0086972*t*t+t*t*t/56250, 360)
	f = math.Mod(93.27191+483202.017538*t-0.0036825*t*t+t*t*t/327270, 360)
	omega = math.Mod(125.04452-1934.136261*t+0.0020708*t*t+t*t*t/450000, 360)
	return
}

// NutationInLongitude returns Δψ (nutation in longitude) in radians, for
// Julian centuries T from J2000.0, per the IAU-1980 theory (Meeus ch. 22).
func NutationInLongitude(t float64) float64 {
	d, m, mp, f, omega := fundamentalArguments(t)

	toRad := math.Pi / 180

	dPsi := 0.0
	for _, row := range nutationTable1980 {
		arg := (row.d*d + row.m*m + row.mp*mp + row.f*f + row.omega*omega) * toRad
		dPsi += (row.sinCoeff + row.sinT*t) * math.Sin(arg)
	}
	// Table entries are in units of 1e-4 arcsecond.
	return dPsi * 1e-4 * arcsecToRad
}

// NutationInObliquity returns Δε (nutation in obliquity) in radians, from
// the cosine coefficients of the same 63-row table.
func NutationInObliquity(t float64) float64 {
	d, m, mp, f, omega := fundamentalArguments(t)

	toRad := math.Pi / 180

	dEps := 0.0
	for _, row := range nutationTable1980 {
		arg := (row.d*d + row.m*m + row.mp*mp + row.f*f + row.omega*omega) * toRad
		dEps += (row.cosCoeff + row.cosT*t) * math.Cos(arg)
	}
	return dEps * 1e-4 * arcsecToRad
}

// fk5Correction applies the VSOP87 -> FK5 frame correction of Meeus ch. 25.
// The general correction includes a tan(beta) term that vanishes here
// because the Sun's VSOP87 ecliptic latitude is taken as zero for the
// apparent-longitude computation, leaving the constant term.
func fk5Correction(float64, float64) float64 {
	return -0.09033 * arcsecToRad
}

// aberrationCorrection returns the annual aberration correction to apply
// to the geocentric longitude, in radians, given the Sun-Earth distance R
// in AU (Meeus ch. 25, eq. 25.10 simplified for low eccentricity).
func aberrationCorrection(r float64) float64 {
	return -20.4898 * arcsecToRad / r
}

// ApparentSolarLongitude returns the Sun's apparent geocentric ecliptic
// longitude, in radians in [0, 2π), at dynamical-time Julian Day jde.
// It applies, in order: VSOP87 heliocentric -> geocentric, FK5 frame
// correction, nutation, and aberration.
func ApparentSolarLongitude(jde float64) float64 {
	t := CenturiesSinceJ2000(jde)
	tau := t / 10

	lHelio, _, r := earthHeliocentric(tau)

	// Geocentric solar longitude = heliocentric Earth longitude + 180°.
	lGeo := normalizeRadians(lHelio + math.Pi)

	lGeo += fk5Correction(lGeo, tau)
	lGeo += NutationInLongitude(t)
	lGeo += aberrationCorrection(r)

	return normalizeRadians(lGeo)
}
