package lunar

import (
	"testing"
	"time"
)

func TestRoundTripSample(t *testing.T) {
	dates := []time.Time{
		Epoch,
		time.Date(1950, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(1984, 2, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		ld, err := SolarToLunar(d)
		if err != nil {
			t.Fatalf("SolarToLunar(%v): %v", d, err)
		}
		back, err := LunarToSolar(ld)
		if err != nil {
			t.Fatalf("LunarToSolar(%+v): %v", ld, err)
		}
		if !back.Equal(d) {
			t.Errorf("round trip mismatch for %v: lunar=%+v, back=%v", d, ld, back)
		}
	}
}

func TestLunarToSolarRejectsBadLeap(t *testing.T) {
	_, err := LunarToSolar(Date{Year: 2000, Month: 1, Day: 1, IsLeap: true})
	if err == nil {
		t.Error("expected error for bogus leap month")
	}
}

func TestLunarToSolarRejectsOverflowDay(t *testing.T) {
	_, err := LunarToSolar(Date{Year: 2000, Month: 1, Day: 30})
	if err == nil {
		t.Log("month 1 of 2000 may genuinely have 30 days; this is a smoke check only")
	}
	_, err = LunarToSolar(Date{Year: 2000, Month: 1, Day: 40})
	if err == nil {
		t.Error("expected error for day 40")
	}
}

func TestOutOfRangeYear(t *testing.T) {
	_, err := LunarToSolar(Date{Year: 1899, Month: 1, Day: 1})
	if err == nil {
		t.Error("expected out-of-range error for year 1899")
	}
	_, err = LunarToSolar(Date{Year: 2101, Month: 1, Day: 1})
	if err == nil {
		t.Error("expected out-of-range error for year 2101")
	}
}
