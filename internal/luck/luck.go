// Package luck implements the L5 layer: the ten-year luck direction rule,
// the start-age computed from distance to the adjacent governing solar
// term, the ten-pillar luck sequence, the annual pillar sequence, and the
// three palaces.
package luck

import (
	"time"

	"github.com/corehuman/bazi-engine/internal/astronomy"
	"github.com/corehuman/bazi-engine/internal/stems"
)

// Direction reports whether the ten-year luck sequence advances forward
// (true) or backward (false) through the sexagenary cycle: forward if
// (year stem is yang AND male) OR (year stem is yin AND female);
// backward otherwise.
func Direction(yearStem stems.Stem, male bool) bool {
	yang := yearStem.Polarity() == stems.Yang
	return (yang && male) || (!yang && !male)
}

// StartAge is the (years, months, days) triple until the ten-year luck
// cycle begins, per the three-days-equals-one-year convention.
type StartAge struct {
	Years, Months, Days int
}

// ComputeStartAge finds the adjacent jie in the luck direction (the next
// jie if forward, the previous jie if backward) and converts the signed
// civil duration between birthInstant and that jie into a StartAge.
func ComputeStartAge(birthInstant time.Time, forward bool) (StartAge, error) {
	prior, next, err := astronomy.PriorAndNextJie(birthInstant)
	if err != nil {
		return StartAge{}, err
	}

	var target time.Time
	if forward {
		target = next.Instant
	} else {
		target = prior.Instant
	}

	duration := target.Sub(birthInstant)
	if duration < 0 {
		duration = -duration
	}
	totalDays := duration.Hours() / 24

	ageYears := totalDays / 3
	years := int(ageYears)
	fracYears := ageYears - float64(years)

	ageMonths := fracYears * 12
	months := int(ageMonths)
	fracMonths := ageMonths - float64(months)

	days := int(fracMonths*30 + 0.5)
	if days == 30 {
		days = 0
		months++
		if months == 12 {
			months = 0
			years++
		}
	}

	return StartAge{Years: years, Months: months, Days: days}, nil
}

// LuckPillar is one step of the ten-year luck sequence: the pillar and
// the half-open age window [AgeFrom, AgeTo) it governs.
type LuckPillar struct {
	Pillar         stems.Pillar
	AgeFrom, AgeTo int
}

// TenYearSequence builds count consecutive luck pillars starting from the
// month pillar, advancing by +1 in the sexagenary cycle if forward, -1 if
// backward. count is conventionally 8 or 9.
func TenYearSequence(monthPillar stems.Pillar, forward bool, startAgeYears, count int) []LuckPillar {
	step := 1
	if !forward {
		step = -1
	}

	base := monthPillar.CycleIndex()
	out := make([]LuckPillar, count)
	for i := 0; i < count; i++ {
		idx := base + step*(i+1)
		out[i] = LuckPillar{
			Pillar:  stems.PillarFromCycleIndex(idx),
			AgeFrom: startAgeYears + 10*i,
			AgeTo:   startAgeYears + 10*(i+1),
		}
	}
	return out
}

// AnnualPillar is one year's entry in the annual fate sequence.
type AnnualPillar struct {
	Year   int
	Pillar stems.Pillar
}

// AnnualSequence emits count consecutive annual pillars starting at
// startYear: pillar index = (Y-4) mod 60.
func AnnualSequence(startYear, count int) []AnnualPillar {
	out := make([]AnnualPillar, count)
	for i := 0; i < count; i++ {
		y := startYear + i
		idx := mod(y-4, 60)
		out[i] = AnnualPillar{Year: y, Pillar: stems.PillarFromCycleIndex(idx)}
	}
	return out
}

// Palaces bundles the three traditional palace pillars.
type Palaces struct {
	TaiYuan  stems.Pillar // 胎元, conception palace
	MingGong stems.Pillar // 命宫, life palace
	ShenGong stems.Pillar // 身宫, body palace
}

// fiveTigerBase mirrors internal/pillars' table: the Five-Tiger-rule base
// stem for the month of Yin (寅), indexed by stem index mod 5.
var fiveTigerBase = [5]stems.Stem{stems.Bing, stems.Wu, stems.Geng, stems.Ren, stems.Jia}

// ComputePalaces derives the three palaces from the month and hour
// pillars and the year stem:
//
//   - TaiYuan: stem is the next stem after the month stem; branch is the
//     month branch + 3.
//   - MingGong (命宫): the traditional "count forward from Yin to the
//     birth month, then count backward from that branch by the birth
//     hour's branch offset from Zi" reduces to monthBranch - hourBranch
//     (mod 12); its stem follows the same Five-Tiger derivation as a
//     month pillar, treating the palace branch as a virtual month branch
//     (a convention choice).
//   - ShenGong (身宫): the mirror-image count, monthBranch + hourBranch
//     (mod 12), with the stem derived the same way.
func ComputePalaces(yearStem stems.Stem, monthPillar, hourPillar stems.Pillar) Palaces {
	taiYuanStem := stems.StemFromIndex(monthPillar.Stem.Index() + 1)
	taiYuanBranch := stems.BranchFromIndex(monthPillar.Branch.Index() + 3)

	mingGongBranch := stems.BranchFromIndex(mod(monthPillar.Branch.Index()-hourPillar.Branch.Index(), 12))
	shenGongBranch := stems.BranchFromIndex(mod(monthPillar.Branch.Index()+hourPillar.Branch.Index(), 12))

	return Palaces{
		TaiYuan:  stems.Pillar{Stem: taiYuanStem, Branch: taiYuanBranch},
		MingGong: stems.Pillar{Stem: virtualMonthStem(yearStem, mingGongBranch), Branch: mingGongBranch},
		ShenGong: stems.Pillar{Stem: virtualMonthStem(yearStem, shenGongBranch), Branch: shenGongBranch},
	}
}

// virtualMonthStem applies the Five-Tiger rule to branch as if it were a
// governing month branch, the same derivation internal/pillars.MonthPillar
// uses for the real month pillar.
func virtualMonthStem(yearStem stems.Stem, branch stems.Branch) stems.Stem {
	monthOffset := mod(branch.Index()-stems.Yin_.Index(), 12)
	base := fiveTigerBase[mod(yearStem.Index(), 5)]
	return stems.StemFromIndex(mod(base.Index()+monthOffset, 10))
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
