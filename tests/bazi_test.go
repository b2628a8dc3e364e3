// Package tests exercises the bazi engine end to end with the canonical
// scenarios worked out by hand against known almanac data.
package tests

import (
	"testing"

	"github.com/corehuman/bazi-engine/internal/bazi"
)

func TestAfterStartOfSpringUsesNewSexagenaryYear(t *testing.T) {
	// 1984-02-05 12:00, longitude 120: the day after 立春, firmly inside
	// the 甲子 year and the 丙寅 month.
	result, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 1984, Month: 2, Day: 5,
		Hour: 12, Minute: 0, Gender: bazi.Male, Longitude: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "甲子丙寅己巳庚午"
	got := result.Pillars.Year.Hanzi() + result.Pillars.Month.Hanzi() +
		result.Pillars.Day.Hanzi() + result.Pillars.Hour.Hanzi()
	if got != want {
		t.Errorf("pillars = %s, want %s", got, want)
	}
}

func TestBeforeStartOfSpringRollsYearBack(t *testing.T) {
	// 1984-02-04 12:00: hours before 立春 (23:19 that evening), so the
	// year pillar is still 癸亥 and the month still the 小寒-governed 乙丑.
	result, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 1984, Month: 2, Day: 4,
		Hour: 12, Minute: 0, Gender: bazi.Male, Longitude: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "癸亥乙丑戊辰戊午"
	got := result.Pillars.Year.Hanzi() + result.Pillars.Month.Hanzi() +
		result.Pillars.Day.Hanzi() + result.Pillars.Hour.Hanzi()
	if got != want {
		t.Errorf("pillars = %s, want %s", got, want)
	}
}

func TestJingzheBoundaryShiftsMonthBranch(t *testing.T) {
	// 2024-03-05 10:24, Beijing longitude: one minute after 惊蛰, the
	// month branch must already be 卯 (Mao).
	result, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 2024, Month: 3, Day: 5,
		Hour: 10, Minute: 24, Gender: bazi.Male, Longitude: 116.4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Pillars.Year.Hanzi() != "甲辰" {
		t.Errorf("year pillar = %s, want 甲辰", result.Pillars.Year.Hanzi())
	}
	if result.Pillars.Month.Branch.Hanzi() != "卯" {
		t.Errorf("month branch = %s, want 卯 (post-惊蛰)", result.Pillars.Month.Branch.Hanzi())
	}
}

func TestBeforeLichunYearPillarStaysPriorYear(t *testing.T) {
	// 2000-01-01 12:00, before 立春: year pillar is still 己卯 (1999).
	result, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 2000, Month: 1, Day: 1,
		Hour: 12, Minute: 0, Gender: bazi.Male, Longitude: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "己卯丙子戊午戊午"
	got := result.Pillars.Year.Hanzi() + result.Pillars.Month.Hanzi() +
		result.Pillars.Day.Hanzi() + result.Pillars.Hour.Hanzi()
	if got != want {
		t.Errorf("pillars = %s, want %s", got, want)
	}
}

func TestDSTWindowShiftsClockBeforePillarDerivation(t *testing.T) {
	// 1986-07-01 15:30, dstConfirmed=true: compute first subtracts one
	// hour, giving an internal clock of 14:30 for pillar derivation.
	withDST, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 1986, Month: 7, Day: 1,
		Hour: 15, Minute: 30, Gender: bazi.Male, Longitude: 120, DSTConfirmed: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	withoutDST, err := bazi.Compute(bazi.Input{
		DateType: bazi.Solar, Year: 1986, Month: 7, Day: 1,
		Hour: 14, Minute: 30, Gender: bazi.Male, Longitude: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	if withDST.Pillars.Hour != withoutDST.Pillars.Hour {
		t.Errorf("DST-corrected 15:30 hour pillar = %s, want equal to uncorrected 14:30 hour pillar %s",
			withDST.Pillars.Hour.Hanzi(), withoutDST.Pillars.Hour.Hanzi())
	}
}

func TestLeapMonthLunarInputResolvesToExpectedCivilDate(t *testing.T) {
	// Lunar 2023 leap-2nd-month day 1, 12:00: the ordinary 2nd month ran
	// Feb 20 - Mar 21, so the leap insertion begins on civil 2023-03-22.
	result, err := bazi.Compute(bazi.Input{
		DateType: bazi.LunarCalendar, Year: 2023, Month: 2, Day: 1, IsLeapMonth: true,
		Hour: 12, Minute: 0, Gender: bazi.Male, Longitude: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	cd := result.CivilDate
	if cd.Year() != 2023 || int(cd.Month()) != 3 || cd.Day() != 22 {
		t.Errorf("resolved civil date = %04d-%02d-%02d, want 2023-03-22",
			cd.Year(), cd.Month(), cd.Day())
	}
}

func TestComputeErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		in   bazi.Input
		kind bazi.ErrorKind
	}{
		{"year too early", bazi.Input{DateType: bazi.Solar, Year: 1899, Month: 1, Day: 1, Longitude: 120}, bazi.OutOfRange},
		{"year too late", bazi.Input{DateType: bazi.Solar, Year: 2101, Month: 1, Day: 1, Longitude: 120}, bazi.OutOfRange},
		{"longitude too large", bazi.Input{DateType: bazi.Solar, Year: 2000, Month: 1, Day: 1, Longitude: 181}, bazi.OutOfRange},
		{"invalid calendar date", bazi.Input{DateType: bazi.Solar, Year: 2023, Month: 4, Day: 31, Longitude: 120}, bazi.InvalidInput},
		{"month out of range", bazi.Input{DateType: bazi.Solar, Year: 2000, Month: 13, Day: 1, Longitude: 120}, bazi.InvalidInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := bazi.Compute(c.in)
			if err == nil {
				t.Fatal("expected an error")
			}
			baziErr, ok := err.(*bazi.Error)
			if !ok {
				t.Fatalf("expected *bazi.Error, got %T", err)
			}
			if baziErr.Kind != c.kind {
				t.Errorf("error kind = %v, want %v", baziErr.Kind, c.kind)
			}
		})
	}
}
