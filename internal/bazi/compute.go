package bazi

import (
	"time"

	"github.com/corehuman/bazi-engine/internal/astronomy"
	"github.com/corehuman/bazi-engine/internal/civil"
	"github.com/corehuman/bazi-engine/internal/elements"
	"github.com/corehuman/bazi-engine/internal/lunar"
	"github.com/corehuman/bazi-engine/internal/luck"
	"github.com/corehuman/bazi-engine/internal/ornaments"
	"github.com/corehuman/bazi-engine/internal/pillars"
	"github.com/corehuman/bazi-engine/internal/stems"
)

// offset8 is the fixed +08:00 civil clock every pillar boundary in this
// engine is expressed in. The civil fields and their offset are carried
// together rather than punned through a UTC-typed timestamp.
var offset8 = time.FixedZone("+08:00", 8*3600)

// Compute is the core entry point: given a validated Input, it runs the
// full L0-L6 pipeline and returns a self-describing Result.
func Compute(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	civilDate, err := resolveCivilDate(in)
	if err != nil {
		return nil, err
	}

	civilInstant := time.Date(civilDate.Year(), civilDate.Month(), civilDate.Day(),
		in.Hour, in.Minute, 0, 0, offset8)
	civilInstant = civil.ApplyDSTCorrection(civilInstant, in.DSTConfirmed)

	reduction := civil.Reduce(civilInstant, in.Longitude)

	// Year and month boundaries are solar-term comparisons in the standard
	// civil frame; the day and hour pillars follow the true solar clock.
	// A caller whose input is already true-solar supplies one clock for
	// both roles.
	solarClock := reduction.ReducedInstant
	if in.TimeType == TrueSolarTime {
		solarClock = civilInstant
	}

	lunarDate, err := lunar.SolarToLunar(civilInstant)
	if err != nil {
		return nil, translateLunarError(err)
	}

	startOfSpring, err := astronomy.SolarTermInstant(civilInstant.Year(), 2)
	if err != nil {
		return nil, translateAstronomyError(err)
	}
	priorJie, nextJie, err := astronomy.PriorAndNextJie(civilInstant)
	if err != nil {
		return nil, wrapError(OutOfRange, err)
	}

	yearPillar, err := pillars.YearPillar(civilInstant)
	if err != nil {
		return nil, translateAstronomyError(err)
	}
	monthPillar, err := pillars.MonthPillar(civilInstant, yearPillar.Stem)
	if err != nil {
		return nil, translateAstronomyError(err)
	}
	dayPillar := pillars.DayPillar(solarClock, in.EarlyRatSplit)
	hourPillar := pillars.HourPillar(solarClock, dayPillar.Stem)

	fp := stems.FourPillars{Year: yearPillar, Month: monthPillar, Day: dayPillar, Hour: hourPillar}

	annotations := buildAnnotations(fp)

	shensha := ornaments.DetectShensha(fp)
	branchRelations := ornaments.DetectBranchRelations(fp)
	stemRelations := ornaments.DetectStemRelations(fp)

	forward := luck.Direction(yearPillar.Stem, in.Gender == Male)
	startAge, err := luck.ComputeStartAge(civilInstant, forward)
	if err != nil {
		return nil, translateAstronomyError(err)
	}
	tenYear := luck.TenYearSequence(monthPillar, forward, startAge.Years, 9)
	annual := luck.AnnualSequence(civilInstant.Year(), 10)
	palaces := luck.ComputePalaces(yearPillar.Stem, monthPillar, hourPillar)

	tally := elements.Count(fp.Stems(), fp.Branches(), elements.DefaultWeights)
	strength := elements.JudgeDayMasterStrength(tally, dayPillar.Stem.Element(), monthPillar.Branch, 0.5, 0.35)

	return &Result{
		CivilDate:     civilInstant,
		LunarDate:     lunarDate,
		TrueSolar:     reduction,
		StartOfSpring: astronomy.SolarTerm{Index: 2, Instant: startOfSpring},
		PriorJie:      priorJie,
		NextJie:       nextJie,

		Pillars:     fp,
		Annotations: annotations,

		Shensha:         shensha,
		BranchRelations: branchRelations,
		StemRelations:   stemRelations,

		LuckDirection: forward,
		LuckStartAge:  startAge,
		TenYearLuck:   tenYear,
		AnnualLuck:    annual,
		Palaces:       palaces,

		ElementTally:      tally,
		DayMasterStrength: strength,
	}, nil
}

// resolveCivilDate converts Input's calendar parts (solar or lunar) to a
// civil (Gregorian) midnight-anchored date.
func resolveCivilDate(in Input) (time.Time, error) {
	if in.DateType == Solar {
		return time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.UTC), nil
	}
	d, err := lunar.LunarToSolar(lunar.Date{Year: in.Year, Month: in.Month, Day: in.Day, IsLeap: in.IsLeapMonth})
	if err != nil {
		return time.Time{}, translateLunarError(err)
	}
	return d, nil
}

// buildAnnotations assembles the per-position hidden-stem, ten-god, and
// nayin annotations of the Result record.
func buildAnnotations(fp stems.FourPillars) [4]PillarAnnotation {
	var out [4]PillarAnnotation
	dayStem := fp.Day.Stem

	for i, pos := range fp.Positions() {
		p := fp.At(pos)
		nayinElement, nayinName := ornaments.NayinOf(p)

		var hiddenAnnotations []HiddenStemAnnotation
		for _, hs := range p.Branch.HiddenStems() {
			hiddenAnnotations = append(hiddenAnnotations, HiddenStemAnnotation{
				HiddenStem: hs,
				TenGod:     ornaments.TenGodOf(dayStem, hs.Stem),
			})
		}

		var tenGod *ornaments.TenGod
		if pos != stems.DayPos {
			g := ornaments.TenGodOf(dayStem, p.Stem)
			tenGod = &g
		}

		out[i] = PillarAnnotation{
			Position:     pos,
			Pillar:       p,
			HiddenStems:  hiddenAnnotations,
			NayinName:    nayinName,
			NayinElement: nayinElement,
			TenGod:       tenGod,
		}
	}
	return out
}

func translateLunarError(err error) *Error {
	switch err.(type) {
	case *lunar.OutOfRangeError:
		return wrapError(OutOfRange, err)
	case *lunar.InvalidLunarDateError:
		return wrapError(InvalidLunarDate, err)
	default:
		return wrapError(InvalidLunarDate, err)
	}
}

func translateAstronomyError(err error) *Error {
	if _, ok := err.(*astronomy.OutOfRangeError); ok {
		return wrapError(OutOfRange, err)
	}
	return wrapError(OutOfRange, err)
}
