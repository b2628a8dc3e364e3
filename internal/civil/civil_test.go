package civil

import (
	"testing"
	"time"
)

func TestEquationOfTimeBounds(t *testing.T) {
	for d := 1; d <= 366; d++ {
		eot := EquationOfTime(d)
		if eot < -15 || eot > 17 {
			t.Errorf("EquationOfTime(%d) = %f, out of [-15, 17]", d, eot)
		}
	}
}

func TestLongitudeOffsetLaw(t *testing.T) {
	instant := time.Date(2024, 3, 5, 10, 24, 0, 0, time.UTC)
	for _, lon := range []float64{-180, -116.4, 0, 116.4, 120, 135, 180} {
		r := Reduce(instant, lon)
		want := (lon - 120) * 4
		if r.LongitudeOffsetMinutes != want {
			t.Errorf("longitude %f: offset = %f, want %f", lon, r.LongitudeOffsetMinutes, want)
		}
	}
}

func TestReductionInvariant(t *testing.T) {
	instant := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	r := Reduce(instant, 116.4)
	wantSeconds := (r.LongitudeOffsetMinutes + r.EquationOfTimeMinutes) * 60
	gotSeconds := r.ReducedInstant.Sub(r.OriginalInstant).Seconds()
	if diff := gotSeconds - wantSeconds; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("reduction invariant violated: got %f s, want %f s", gotSeconds, wantSeconds)
	}
}

func TestDSTWindowSemantics(t *testing.T) {
	active := time.Date(1986, 6, 1, 0, 0, 0, 0, cst)
	if !IsDSTActive(active) {
		t.Error("expected DST active mid-window in 1986")
	}
	before := time.Date(1986, 5, 4, 0, 0, 0, 0, cst)
	if !IsDSTActive(before) {
		t.Error("window start should be inclusive")
	}
	onEnd := time.Date(1986, 9, 14, 0, 0, 0, 0, cst)
	if IsDSTActive(onEnd) {
		t.Error("window end should be exclusive")
	}
	outside := time.Date(1995, 6, 1, 0, 0, 0, 0, cst)
	if IsDSTActive(outside) {
		t.Error("1995 has no DST window")
	}
}

func TestApplyDSTCorrection(t *testing.T) {
	instant := time.Date(1986, 7, 1, 15, 30, 0, 0, cst)
	corrected := ApplyDSTCorrection(instant, true)
	if !corrected.Equal(instant.Add(-time.Hour)) {
		t.Errorf("expected -1h correction, got %v", corrected.Sub(instant))
	}
	unconfirmed := ApplyDSTCorrection(instant, false)
	if !unconfirmed.Equal(instant) {
		t.Error("unconfirmed DST should be identity")
	}
}
