// Package pillars implements the L3 layer: year/month/day/hour
// stem-branch derivation. Year and month boundaries are
// astronomical solar-term instants compared in the standard civil (+08)
// frame, never civil month/day rollovers; the day and hour pillars follow
// the true-solar clock (see DESIGN.md on the frame split).
package pillars

import (
	"time"

	"github.com/corehuman/bazi-engine/internal/astronomy"
	"github.com/corehuman/bazi-engine/internal/stems"
)

// dayEpoch is the civil midnight the day count N is measured from. Its
// almanac day pillar is 甲辰, sexagenary cycle index 40, which anchors
// every derived day pillar (1900-01-31 was a JiaChen day; the anchor
// rationale is recorded in DESIGN.md).
var dayEpoch = time.Date(1900, 1, 31, 0, 0, 0, 0, time.UTC)

const dayEpochCycleIndex = 40

// jieBranch maps each jie (even solar-term index) to its governing month
// branch: 立春(2)->寅, 惊蛰(4)->卯, 清明(6)->辰, 立夏(8)->巳, 芒种(10)->午,
// 小暑(12)->未, 立秋(14)->申, 白露(16)->酉, 寒露(18)->戌, 立冬(20)->亥,
// 大雪(22)->子, 小寒(0)->丑.
var jieBranch = map[int]stems.Branch{
	2: stems.Yin_, 4: stems.Mao, 6: stems.Chen, 8: stems.Si, 10: stems.Wu_,
	12: stems.Wei, 14: stems.Shen, 16: stems.You, 18: stems.Xu, 20: stems.Hai,
	22: stems.Zi, 0: stems.Chou,
}

// fiveTigerBase is the Five-Tiger-rule base stem for the month of 寅 (Yin),
// indexed by year-stem index mod 5: Jia/Ji->Bing, Yi/Geng->Wu, Bing/Xin->
// Geng, Ding/Ren->Ren, Wu/Gui->Jia.
var fiveTigerBase = [5]stems.Stem{stems.Bing, stems.Wu, stems.Geng, stems.Ren, stems.Jia}

// fiveRatOffset is the Five-Rat-rule hour-stem offset, indexed by
// day-stem index mod 5: Jia/Ji->0, Yi/Geng->2, Bing/Xin->4, Ding/Ren->6,
// Wu/Gui->8.
var fiveRatOffset = [5]int{0, 2, 4, 6, 8}

// YearPillar derives the year pillar from the standard civil instant
//: the effective year is the civil year if instant is at
// or after that year's Start-of-Spring instant, else civil year - 1.
func YearPillar(instant time.Time) (stems.Pillar, error) {
	civilYear := instant.Year()
	startOfSpring, err := astronomy.SolarTermInstant(civilYear, 2)
	if err != nil {
		return stems.Pillar{}, err
	}

	effectiveYear := civilYear
	if instant.Before(startOfSpring) {
		effectiveYear--
	}

	stemIdx := mod(effectiveYear-4, 10)
	branchIdx := mod(effectiveYear-4, 12)
	return stems.Pillar{Stem: stems.StemFromIndex(stemIdx), Branch: stems.BranchFromIndex(branchIdx)}, nil
}

// MonthPillar derives the month pillar from the standard civil instant
// and the year pillar's stem: the governing jie is the
// latest one whose instant is <= instant.
func MonthPillar(instant time.Time, yearStem stems.Stem) (stems.Pillar, error) {
	jieIdx, err := latestJieIndex(instant)
	if err != nil {
		return stems.Pillar{}, err
	}

	branch := jieBranch[jieIdx]
	monthOffset := mod(branch.Index()-stems.Yin_.Index(), 12)

	base := fiveTigerBase[mod(yearStem.Index(), 5)]
	stemIdx := mod(base.Index()+monthOffset, 10)

	return stems.Pillar{Stem: stems.StemFromIndex(stemIdx), Branch: branch}, nil
}

// latestJieIndex finds, among the twelve jie in and around instant's
// civil year, the latest one whose instant is <= instant.
func latestJieIndex(instant time.Time) (int, error) {
	year := instant.Year()
	var all []astronomy.SolarTerm
	for _, y := range []int{year - 1, year, year + 1} {
		terms, err := astronomy.AllSolarTerms(y)
		if err != nil {
			return 0, err
		}
		for _, term := range terms {
			if astronomy.IsJie(term.Index) {
				all = append(all, term)
			}
		}
	}

	best := -1
	var bestInstant time.Time
	for _, term := range all {
		if !term.Instant.After(instant) && (best == -1 || term.Instant.After(bestInstant)) {
			best = term.Index
			bestInstant = term.Instant
		}
	}
	if best == -1 {
		return 0, &astronomy.OutOfRangeError{Field: "jie bracket", Value: year}
	}
	return best, nil
}

// DayPillar derives the day pillar from the true-solar clock instant.
// The day count uses the instant's civil calendar fields, so the caller's
// rendering offset never skews it. If earlyRatSplit is true and the
// instant's hour is >= 23 (23:00:00.000 inclusive), the day index is
// advanced by one: the 23:00-23:59 hour belongs to the following day's
// pillar.
func DayPillar(instant time.Time, earlyRatSplit bool) stems.Pillar {
	midnight := time.Date(instant.Year(), instant.Month(), instant.Day(), 0, 0, 0, 0, time.UTC)
	n := int(midnight.Sub(dayEpoch).Hours() / 24)

	if earlyRatSplit && instant.Hour() >= 23 {
		n++
	}

	return stems.PillarFromCycleIndex(n + dayEpochCycleIndex)
}

// HourPillar derives the hour pillar from the true-solar clock instant's
// hour and the day pillar's stem, via the Five-Rat rule.
func HourPillar(instant time.Time, dayStem stems.Stem) stems.Pillar {
	hourBranchIdx := mod((instant.Hour()+1)/2, 12)
	offset := fiveRatOffset[mod(dayStem.Index(), 5)]
	stemIdx := mod(hourBranchIdx+offset, 10)
	return stems.Pillar{Stem: stems.StemFromIndex(stemIdx), Branch: stems.BranchFromIndex(hourBranchIdx)}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
