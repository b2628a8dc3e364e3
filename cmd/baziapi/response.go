package main

import (
	"fmt"
	"time"

	"github.com/corehuman/bazi-engine/internal/bazi"
	"github.com/corehuman/bazi-engine/internal/lunar"
	"github.com/corehuman/bazi-engine/internal/luck"
	"github.com/corehuman/bazi-engine/internal/stems"
)

// PillarView is the wire shape of one annotated pillar.
type PillarView struct {
	Position     string           `json:"position"`
	Stem         string           `json:"stem"`
	Branch       string           `json:"branch"`
	Hanzi        string           `json:"hanzi"`
	HiddenStems  []HiddenStemView `json:"hiddenStems"`
	Nayin        string           `json:"nayin"`
	NayinElement string           `json:"nayinElement"`
	TenGod       string           `json:"tenGod,omitempty"`
}

type HiddenStemView struct {
	Stem   string  `json:"stem"`
	Role   string  `json:"role"`
	Weight float64 `json:"weight"`
	TenGod string  `json:"tenGod"`
}

type ShenshaView struct {
	Shensha   string   `json:"shensha"`
	Positions []string `json:"positions"`
}

type BranchRelationView struct {
	Kind      string   `json:"kind"`
	Positions []string `json:"positions"`
	Element   string   `json:"element,omitempty"`
}

type StemRelationView struct {
	Combine   bool     `json:"combine"`
	Positions []string `json:"positions"`
	Element   string   `json:"element,omitempty"`
}

type LuckPillarView struct {
	Stem    string `json:"stem"`
	Branch  string `json:"branch"`
	AgeFrom int    `json:"ageFrom"`
	AgeTo   int    `json:"ageTo"`
}

type AnnualPillarView struct {
	Year   int    `json:"year"`
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

type PalacesView struct {
	TaiYuan  string `json:"taiYuan"`
	MingGong string `json:"mingGong"`
	ShenGong string `json:"shenGong"`
}

type FingerprintView struct {
	HMAC   string `json:"hmac"`
	Blake3 string `json:"blake3"`
}

// ResultView is the wire shape of a POST /v1/compute response.
type ResultView struct {
	CivilDate         time.Time            `json:"civilDate"`
	LunarDate         string               `json:"lunarDate"`
	TrueSolarOffset   string               `json:"trueSolarOffsetMinutes"`
	Pillars           []PillarView         `json:"pillars"`
	Shensha           []ShenshaView        `json:"shensha"`
	BranchRelations   []BranchRelationView `json:"branchRelations"`
	StemRelations     []StemRelationView   `json:"stemRelations"`
	LuckForward       bool                 `json:"luckForward"`
	LuckStartAge      string               `json:"luckStartAge"`
	TenYearLuck       []LuckPillarView     `json:"tenYearLuck"`
	AnnualLuck        []AnnualPillarView   `json:"annualLuck"`
	Palaces           PalacesView          `json:"palaces"`
	ElementScores     map[string]float64   `json:"elementScores"`
	DayMasterStrength string               `json:"dayMasterStrength"`
	Fingerprint       *FingerprintView     `json:"fingerprint,omitempty"`
}

func toResultView(result *bazi.Result) ResultView {
	pillars := make([]PillarView, 0, len(result.Annotations))
	for _, a := range result.Annotations {
		hidden := make([]HiddenStemView, 0, len(a.HiddenStems))
		for _, hs := range a.HiddenStems {
			hidden = append(hidden, HiddenStemView{
				Stem:   hs.Stem.Name(),
				Role:   hs.Role.String(),
				Weight: hs.Weight,
				TenGod: hs.TenGod.String(),
			})
		}
		tenGod := ""
		if a.TenGod != nil {
			tenGod = a.TenGod.String()
		}
		pillars = append(pillars, PillarView{
			Position:     a.Position.String(),
			Stem:         a.Pillar.Stem.Name(),
			Branch:       a.Pillar.Branch.Name(),
			Hanzi:        a.Pillar.Hanzi(),
			HiddenStems:  hidden,
			Nayin:        a.NayinName,
			NayinElement: a.NayinElement.String(),
			TenGod:       tenGod,
		})
	}

	shensha := make([]ShenshaView, 0, len(result.Shensha))
	for _, h := range result.Shensha {
		shensha = append(shensha, ShenshaView{Shensha: h.Shensha.String(), Positions: positionNames(h.Positions)})
	}

	branchRelations := make([]BranchRelationView, 0, len(result.BranchRelations))
	for _, h := range result.BranchRelations {
		branchRelations = append(branchRelations, BranchRelationView{
			Kind: h.Kind.String(), Positions: positionNames(h.Positions), Element: h.Element.String(),
		})
	}

	stemRelations := make([]StemRelationView, 0, len(result.StemRelations))
	for _, h := range result.StemRelations {
		element := ""
		if h.Combine {
			element = h.Element.String()
		}
		stemRelations = append(stemRelations, StemRelationView{
			Combine: h.Combine, Positions: positionNames(h.Positions), Element: element,
		})
	}

	tenYear := make([]LuckPillarView, 0, len(result.TenYearLuck))
	for _, l := range result.TenYearLuck {
		tenYear = append(tenYear, LuckPillarView{
			Stem: l.Pillar.Stem.Name(), Branch: l.Pillar.Branch.Name(), AgeFrom: l.AgeFrom, AgeTo: l.AgeTo,
		})
	}

	annual := make([]AnnualPillarView, 0, len(result.AnnualLuck))
	for _, a := range result.AnnualLuck {
		annual = append(annual, AnnualPillarView{Year: a.Year, Stem: a.Pillar.Stem.Name(), Branch: a.Pillar.Branch.Name()})
	}

	scores := make(map[string]float64, len(result.ElementTally.Score))
	for el, v := range result.ElementTally.Score {
		scores[el.String()] = v
	}

	totalOffsetMinutes := result.TrueSolar.LongitudeOffsetMinutes + result.TrueSolar.EquationOfTimeMinutes

	return ResultView{
		CivilDate:       result.CivilDate,
		LunarDate:       formatLunarDate(result.LunarDate),
		TrueSolarOffset: fmt.Sprintf("%.2f", totalOffsetMinutes),
		Pillars:         pillars,
		Shensha:         shensha,
		BranchRelations: branchRelations,
		StemRelations:   stemRelations,
		LuckForward:     result.LuckDirection,
		LuckStartAge:    formatStartAge(result.LuckStartAge),
		TenYearLuck:     tenYear,
		AnnualLuck:      annual,
		Palaces: PalacesView{
			TaiYuan:  result.Palaces.TaiYuan.Hanzi(),
			MingGong: result.Palaces.MingGong.Hanzi(),
			ShenGong: result.Palaces.ShenGong.Hanzi(),
		},
		ElementScores:     scores,
		DayMasterStrength: result.DayMasterStrength.Status.String(),
	}
}

func positionNames(positions []stems.Position) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, p.String())
	}
	return out
}

func formatLunarDate(d lunar.Date) string {
	leap := ""
	if d.IsLeap {
		leap = " (leap)"
	}
	return fmt.Sprintf("%04d-%02d-%02d%s", d.Year, d.Month, d.Day, leap)
}

func formatStartAge(a luck.StartAge) string {
	return fmt.Sprintf("%dy %dm %dd", a.Years, a.Months, a.Days)
}
