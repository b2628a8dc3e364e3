package astronomy

// DeltaT computes ΔT = TD - UT in SI seconds for a given decimal calendar
// year, using the piecewise-polynomial model of Espenak & Meeus. The
// pieces are continuous to within seconds at every boundary, so callers
// never observe a discontinuity.
func DeltaT(year float64) float64 {
	switch {
	case year < 1900:
		u := (year - 1820) / 100
		return -20 + 32*u*u
	case year < 1920:
		t := year - 1900
		return horner(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case year < 1941:
		t := year - 1920
		return horner(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case year < 1961:
		t := year - 1950
		return horner(t, 29.07, 0.407, -1.0/233.0, 1.0/2547.0)
	case year < 1986:
		t := year - 1975
		return horner(t, 45.45, 1.067, -1.0/260.0, -1.0/718.0)
	case year < 2005:
		t := year - 2000
		return horner(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case year < 2050:
		t := year - 2000
		return horner(t, 62.92, 0.32217, 0.005589)
	case year < 2150:
		u := (year - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-year)
	default:
		u := (year - 1820) / 100
		return -20 + 32*u*u
	}
}

// horner evaluates a polynomial in t given its coefficients from the
// constant term up.
func horner(t float64, coeffs ...float64) float64 {
	result := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*t + coeffs[i]
	}
	return result
}
