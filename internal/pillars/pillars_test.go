package pillars

import (
	"testing"
	"time"

	"github.com/corehuman/bazi-engine/internal/astronomy"
)

func TestDayPillarCyclicity(t *testing.T) {
	d := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p1 := DayPillar(d, false)
	p2 := DayPillar(d.AddDate(0, 0, 60), false)
	if p1 != p2 {
		t.Errorf("day pillar not cyclic over 60 days: %v vs %v", p1, p2)
	}
}

func TestDayPillarEpoch(t *testing.T) {
	epoch := time.Date(1900, 1, 31, 0, 0, 0, 0, time.UTC)
	p := DayPillar(epoch, false)
	if p.CycleIndex() != dayEpochCycleIndex {
		t.Errorf("epoch day pillar cycle index = %d, want %d (甲辰)", p.CycleIndex(), dayEpochCycleIndex)
	}
}

func TestDayPillarKnownAlmanacDates(t *testing.T) {
	cases := []struct {
		date time.Time
		want int // sexagenary cycle index
	}{
		{time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC), 17}, // 辛巳
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 54}, // 戊午
		{time.Date(1984, 2, 4, 12, 0, 0, 0, time.UTC), 4},  // 戊辰
		{time.Date(1949, 10, 1, 12, 0, 0, 0, time.UTC), 0}, // 甲子
	}
	for _, c := range cases {
		p := DayPillar(c.date, false)
		if p.CycleIndex() != c.want {
			t.Errorf("day pillar for %v = %s (index %d), want index %d",
				c.date.Format("2006-01-02"), p, p.CycleIndex(), c.want)
		}
	}
}

func TestEarlyRatSplitAdvancesDay(t *testing.T) {
	d := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	withoutSplit := DayPillar(d, false)
	withSplit := DayPillar(d, true)
	if withSplit.CycleIndex() != (withoutSplit.CycleIndex()+1)%60 {
		t.Errorf("early rat split should advance day pillar by one: got %d from %d", withSplit.CycleIndex(), withoutSplit.CycleIndex())
	}
}

func TestAllPillarsSatisfySexagenaryConstraint(t *testing.T) {
	instant := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	yp, err := YearPillar(instant)
	if err != nil {
		t.Fatal(err)
	}
	mp, err := MonthPillar(instant, yp.Stem)
	if err != nil {
		t.Fatal(err)
	}
	dp := DayPillar(instant, false)
	hp := HourPillar(instant, dp.Stem)

	for _, p := range []struct {
		name string
		p    interface{ Valid() bool }
	}{{"year", yp}, {"month", mp}, {"day", dp}, {"hour", hp}} {
		if !p.p.Valid() {
			t.Errorf("%s pillar violates sexagenary constraint", p.name)
		}
	}
}

func TestYearPillarFlipsExactlyAtStartOfSpring(t *testing.T) {
	sos, err := astronomy.SolarTermInstant(1984, 2)
	if err != nil {
		t.Fatal(err)
	}
	before, err := YearPillar(sos.Add(-time.Second))
	if err != nil {
		t.Fatal(err)
	}
	at, err := YearPillar(sos)
	if err != nil {
		t.Fatal(err)
	}
	if got := before.Stem.Index(); got != mod(1983-4, 10) {
		t.Errorf("one second before Start-of-Spring: year stem index %d, want effective year 1983", got)
	}
	if got := at.Stem.Index(); got != mod(1984-4, 10) {
		t.Errorf("at Start-of-Spring exactly: year stem index %d, want effective year 1984", got)
	}
}

func TestYearPillarBoundary(t *testing.T) {
	// Construct an instant far from Start-of-Spring and confirm the
	// effective year shifts backward when before it.
	early := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := YearPillar(early)
	if err != nil {
		t.Fatal(err)
	}
	// 2000's Start-of-Spring is ~Feb 4; Jan 1 must use effective year 1999.
	wantStem := mod(1999-4, 10)
	if p.Stem.Index() != wantStem {
		t.Errorf("pre-spring year pillar stem = %d, want %d (effective year 1999)", p.Stem.Index(), wantStem)
	}
}
