// Package lunar implements the L2 layer: a compressed-table Chinese
// lunisolar calendar covering 1900-2100, with leap-month resolution and
// bijective round-trip conversion.
package lunar

import "time"

// FirstYear and LastYear bound the encoded table range.
const (
	FirstYear = 1900
	LastYear  = 2100
)

// Epoch is 1900-01-31, the civil date of the lunar new year for 1900 and
// the base from which every offset in SolarToLunar/LunarToSolar is
// measured.
var Epoch = time.Date(1900, 1, 31, 0, 0, 0, 0, time.UTC)

// lunarInfo encodes, one int per year from 1900 to 2100: bits 0-3 the
// leap-month number (0 = no leap month that year), bits 4-15 the ordinary
// month lengths for months 12 down to 1 (1 => 30 days, 0 => 29 days), bit
// 16 the leap month's own length (0 => 29 days, 1 => 30). This is the
// widely-used compressed lunar-year table found throughout Chinese
// calendar software (see DESIGN.md for provenance notes).
var lunarInfo = [...]uint32{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2,
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977,
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970,
	0x06566, 0x0d4a0, 0x0ea50, 0x06e95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950,
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557,
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5d0, 0x14573, 0x052d0, 0x0a9a8, 0x0e950, 0x06aa0,
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0,
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b5a0, 0x195a6,
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570,
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x055c0, 0x0ab60, 0x096d5, 0x092e0,
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5,
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930,
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530,
	0x05aa0, 0x076a3, 0x096d0, 0x04bd7, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45,
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0,
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0,
	0x0a2e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4,
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0,
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160,
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252,
	0x0d520,
}

// leapMonth returns the leap-month number for year (0 if none).
func leapMonth(year int) int {
	return int(lunarInfo[year-FirstYear] & 0xf)
}

// leapDays returns the length of the leap month for year (0 if none).
func leapDays(year int) int {
	if leapMonth(year) == 0 {
		return 0
	}
	if lunarInfo[year-FirstYear]&0x10000 != 0 {
		return 30
	}
	return 29
}

// monthDays returns the length of ordinary month m (1..12) of year.
func monthDays(year, m int) int {
	if lunarInfo[year-FirstYear]&(0x10000>>uint(m)) != 0 {
		return 30
	}
	return 29
}

// yearDays returns the total number of days in the lunar year (ordinary
// months plus leap month if any).
func yearDays(year int) int {
	total := 0
	for m := 1; m <= 12; m++ {
		total += monthDays(year, m)
	}
	return total + leapDays(year)
}
