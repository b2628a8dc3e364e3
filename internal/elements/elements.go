// Package elements implements the L6 layer: five-element count and
// weighted score across the four pillars, plus the day-master strength
// judgment.
package elements

import (
	"fmt"

	"github.com/corehuman/bazi-engine/internal/stems"
)

// Weights is the configurable contribution of each source to an
// element's score.
type Weights struct {
	Stem     float64
	Primary  float64
	Middle   float64
	Residual float64
}

// DefaultWeights is the conventional default: stem=1.0, primary hidden
// stem=0.7, middle=0.3, residual=0.1.
var DefaultWeights = Weights{Stem: 1.0, Primary: 0.7, Middle: 0.3, Residual: 0.1}

func (w Weights) forRole(role stems.HiddenRole) float64 {
	switch role {
	case stems.Primary:
		return w.Primary
	case stems.Middle:
		return w.Middle
	default:
		return w.Residual
	}
}

// Tally bundles the unweighted count and weighted score for the five
// elements.
type Tally struct {
	Count map[stems.Element]float64
	Score map[stems.Element]float64
}

// Count accumulates, over the four pillar stems and their branches'
// hidden stems, an unweighted occurrence tally and a Weights-weighted
// score per element: +1 (count) / +Stem (score) for each
// of the four stems whose element matches; +1 (count) / +role-weight
// (score) for each hidden stem contribution.
func Count(pillarStems [4]stems.Stem, pillarBranches [4]stems.Branch, w Weights) Tally {
	count := map[stems.Element]float64{}
	score := map[stems.Element]float64{}
	for _, e := range []stems.Element{stems.Wood, stems.Fire, stems.Earth, stems.Metal, stems.Water} {
		count[e] = 0
		score[e] = 0
	}

	for _, s := range pillarStems {
		e := s.Element()
		count[e]++
		score[e] += w.Stem
	}

	for _, b := range pillarBranches {
		for _, hs := range b.HiddenStems() {
			e := hs.Stem.Element()
			count[e]++
			score[e] += w.forRole(hs.Role)
		}
	}

	return Tally{Count: count, Score: score}
}

// Strength classifies the day master's relative power in the chart.
type Strength int

const (
	Weak Strength = iota
	Neutral
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	default:
		return "neutral"
	}
}

// generatorOf returns the element that generates target in the
// production cycle (the inverse of Element.Generates).
func generatorOf(target stems.Element) stems.Element {
	for _, e := range []stems.Element{stems.Wood, stems.Fire, stems.Earth, stems.Metal, stems.Water} {
		if e.Generates(target) {
			return e
		}
	}
	return target
}

// StrengthJudgment bundles the day master's strength status with its
// supporting score and a short analysis line.
type StrengthJudgment struct {
	Status   Strength
	Score    float64
	Analysis string
}

// JudgeDayMasterStrength classifies the day master's strength from a
// five-element Tally, shifted by one step if the month branch's primary
// hidden stem matches, generates, or overcomes the day-master element.
// strongThreshold/weakThreshold default to 0.5/0.35.
func JudgeDayMasterStrength(tally Tally, dayElement stems.Element, monthBranch stems.Branch, strongThreshold, weakThreshold float64) StrengthJudgment {
	total := 0.0
	for _, v := range tally.Score {
		total += v
	}

	support := tally.Score[dayElement] + tally.Score[generatorOf(dayElement)]
	fraction := 0.0
	if total > 0 {
		fraction = support / total
	}

	status := Neutral
	switch {
	case fraction > strongThreshold:
		status = Strong
	case fraction < weakThreshold:
		status = Weak
	}

	shift := monthShift(dayElement, monthBranch)
	status = shiftStatus(status, shift)

	return StrengthJudgment{
		Status:   status,
		Score:    fraction,
		Analysis: analysisText(status, fraction, dayElement, monthBranch, shift),
	}
}

// monthShift returns +1 if the month branch's primary hidden stem element
// strengthens the day master (matches it or generates it), -1 if it
// overcomes the day master, 0 otherwise.
func monthShift(dayElement stems.Element, monthBranch stems.Branch) int {
	hidden := monthBranch.HiddenStems()
	if len(hidden) == 0 {
		return 0
	}
	primary := hidden[0].Stem.Element()

	switch {
	case primary == dayElement:
		return 1
	case primary.Generates(dayElement):
		return 1
	case primary.Overcomes(dayElement):
		return -1
	default:
		return 0
	}
}

func shiftStatus(s Strength, shift int) Strength {
	v := int(s) + shift
	if v < int(Weak) {
		v = int(Weak)
	}
	if v > int(Strong) {
		v = int(Strong)
	}
	return Strength(v)
}

func analysisText(status Strength, fraction float64, dayElement stems.Element, monthBranch stems.Branch, shift int) string {
	shiftWord := "unaffected by"
	if shift > 0 {
		shiftWord = "reinforced by"
	} else if shift < 0 {
		shiftWord = "weakened by"
	}
	return fmt.Sprintf("%s day master: %s carries %.1f%% of the chart's weighted element score, %s the month branch %s's seasonal influence.",
		status, dayElement, fraction*100, shiftWord, monthBranch.Name())
}
