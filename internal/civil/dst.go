package civil

import "time"

// dstWindow is one [Start, End) daylight-saving window: civil clocks in
// this range are believed to already be one hour ahead of standard time.
type dstWindow struct {
	Start, End time.Time
}

// cst is the +08:00 civil clock the DST window dates are defined in.
var cst = time.FixedZone("+08:00", 8*3600)

func mustDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, cst)
}

// dstWindows enumerates mainland China's six historical DST windows
// (1986-1991). Each pair is the civil date on which
// clocks moved forward at 00:00 and the date they moved back at 00:00.
var dstWindows = []dstWindow{
	{mustDate(1986, 5, 4), mustDate(1986, 9, 14)},
	{mustDate(1987, 4, 12), mustDate(1987, 9, 13)},
	{mustDate(1988, 4, 10), mustDate(1988, 9, 11)},
	{mustDate(1989, 4, 16), mustDate(1989, 9, 17)},
	{mustDate(1990, 4, 15), mustDate(1990, 9, 16)},
	{mustDate(1991, 4, 14), mustDate(1991, 9, 15)},
}

// IsDSTActive reports whether instant falls within any historical DST
// window, using a left-closed, right-open interval test.
func IsDSTActive(instant time.Time) bool {
	for _, w := range dstWindows {
		if !instant.Before(w.Start) && instant.Before(w.End) {
			return true
		}
	}
	return false
}

// ApplyDSTCorrection subtracts exactly one hour from instant iff
// userConfirmed is true and instant lies in a DST window; otherwise it
// is the identity.
func ApplyDSTCorrection(instant time.Time, userConfirmed bool) time.Time {
	if userConfirmed && IsDSTActive(instant) {
		return instant.Add(-time.Hour)
	}
	return instant
}
