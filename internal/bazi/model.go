// Package bazi implements the L7 layer: the single entry point Compute
// that composes L0-L6 into a self-describing result record.
package bazi

import (
	"time"

	"github.com/corehuman/bazi-engine/internal/astronomy"
	"github.com/corehuman/bazi-engine/internal/civil"
	"github.com/corehuman/bazi-engine/internal/elements"
	"github.com/corehuman/bazi-engine/internal/lunar"
	"github.com/corehuman/bazi-engine/internal/luck"
	"github.com/corehuman/bazi-engine/internal/ornaments"
	"github.com/corehuman/bazi-engine/internal/stems"
)

// DateType selects whether Input's year/month/day are civil or lunar
// calendar parts.
type DateType int

const (
	Solar DateType = iota
	LunarCalendar
)

// TimeType selects whether Input's hour/minute are the standard +08
// civil clock or an already true-solar-reduced clock.
type TimeType int

const (
	StandardTime TimeType = iota
	TrueSolarTime
)

// Gender selects which way the luck-direction rule resolves.
type Gender int

const (
	Male Gender = iota
	Female
)

// Input is the core entry point's input record.
type Input struct {
	DateType      DateType
	Year          int
	Month         int
	Day           int
	IsLeapMonth   bool
	Hour          int
	Minute        int
	TimeType      TimeType
	Gender        Gender
	Longitude     float64
	DSTConfirmed  bool
	EarlyRatSplit bool
}

// HiddenStemAnnotation pairs a hidden stem with its ten-god label
// relative to the day master.
type HiddenStemAnnotation struct {
	stems.HiddenStem
	TenGod ornaments.TenGod
}

// PillarAnnotation bundles one resolved pillar with its hidden stems,
// nayin, and (for non-day positions) ten-god label.
type PillarAnnotation struct {
	Position     stems.Position
	Pillar       stems.Pillar
	HiddenStems  []HiddenStemAnnotation
	NayinName    string
	NayinElement stems.Element
	TenGod       *ornaments.TenGod // nil for the day position (self)
}

// Result is the core entry point's output record.
type Result struct {
	CivilDate      time.Time
	LunarDate      lunar.Date
	TrueSolar      civil.TrueSolarReduction
	StartOfSpring  astronomy.SolarTerm
	PriorJie       astronomy.SolarTerm
	NextJie        astronomy.SolarTerm

	Pillars     stems.FourPillars
	Annotations [4]PillarAnnotation

	Shensha         []ornaments.ShenshaHit
	BranchRelations []ornaments.BranchRelationHit
	StemRelations   []ornaments.StemRelationHit

	LuckDirection bool // true = forward
	LuckStartAge  luck.StartAge
	TenYearLuck   []luck.LuckPillar
	AnnualLuck    []luck.AnnualPillar
	Palaces       luck.Palaces

	ElementTally      elements.Tally
	DayMasterStrength elements.StrengthJudgment
}
