package main

import (
	"fmt"

	"github.com/corehuman/bazi-engine/internal/bazi"
)

// cliView is a compact JSON projection of a Result for command-line use:
// the four pillars, the lunar date, and the headline ornament/luck facts.
type cliView struct {
	CivilDate         string   `json:"civilDate"`
	LunarDate         string   `json:"lunarDate"`
	YearPillar        string   `json:"yearPillar"`
	MonthPillar       string   `json:"monthPillar"`
	DayPillar         string   `json:"dayPillar"`
	HourPillar        string   `json:"hourPillar"`
	DayMaster         string   `json:"dayMaster"`
	DayMasterStrength string   `json:"dayMasterStrength"`
	LuckForward       bool     `json:"luckForward"`
	LuckStartAge      string   `json:"luckStartAge"`
	Shensha           []string `json:"shensha"`
}

func toCLIView(result *bazi.Result) cliView {
	shensha := make([]string, 0, len(result.Shensha))
	for _, h := range result.Shensha {
		shensha = append(shensha, h.Shensha.String())
	}

	return cliView{
		CivilDate:         result.CivilDate.Format("2006-01-02T15:04:05Z07:00"),
		LunarDate:         fmt.Sprintf("%04d-%02d-%02d", result.LunarDate.Year, result.LunarDate.Month, result.LunarDate.Day),
		YearPillar:        result.Pillars.Year.Hanzi(),
		MonthPillar:       result.Pillars.Month.Hanzi(),
		DayPillar:         result.Pillars.Day.Hanzi(),
		HourPillar:        result.Pillars.Hour.Hanzi(),
		DayMaster:         result.Pillars.Day.Stem.Name(),
		DayMasterStrength: result.DayMasterStrength.Status.String(),
		LuckForward:       result.LuckDirection,
		LuckStartAge:      fmt.Sprintf("%dy %dm %dd", result.LuckStartAge.Years, result.LuckStartAge.Months, result.LuckStartAge.Days),
		Shensha:           shensha,
	}
}
