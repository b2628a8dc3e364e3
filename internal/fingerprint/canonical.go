// Package fingerprint builds a deterministic canonical encoding of a
// computed chart and signs it, so two identical charts always produce the
// same canonical bytes, and so the same BLAKE3 digest, regardless of struct
// field order or map iteration. The HMAC also depends on the salt passed to
// Sign.
package fingerprint

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/corehuman/bazi-engine/internal/bazi"
)

type fixed4 float64

func (f fixed4) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.4f", float64(f))), nil
}

type canonicalPillar struct {
	Position string `json:"position"`
	Stem     string `json:"stem"`
	Branch   string `json:"branch"`
	Nayin    string `json:"nayin"`
}

type canonicalElementScore struct {
	Element string `json:"element"`
	Score   fixed4 `json:"score"`
}

type canonicalChart struct {
	CivilDateUnix     int64                   `json:"civilDateUnix"`
	LunarYear         int                     `json:"lunarYear"`
	LunarMonth        int                     `json:"lunarMonth"`
	LunarDay          int                     `json:"lunarDay"`
	LunarIsLeap       bool                    `json:"lunarIsLeap"`
	Pillars           []canonicalPillar       `json:"pillars"`
	ElementScores     []canonicalElementScore `json:"elementScores"`
	DayMasterStrength string                  `json:"dayMasterStrength"`
	LuckDirection     bool                    `json:"luckDirection"`
}

// CanonicalBytes builds a canonical, deterministically ordered JSON
// encoding of a Result suitable for cryptographic signing. The encoding
// intentionally drops fields that are derived or presentation-only (solar
// term instants, shensha/relation hit lists, luck pillar sequences) and
// keeps only the chart's identity: the civil instant, the lunar date, the
// four pillars with their nayin, the element scores, the day-master
// strength, and the luck direction.
func CanonicalBytes(result *bazi.Result) ([]byte, error) {
	pillars := make([]canonicalPillar, 0, 4)
	for _, a := range result.Annotations {
		pillars = append(pillars, canonicalPillar{
			Position: a.Position.String(),
			Stem:     a.Pillar.Stem.Name(),
			Branch:   a.Pillar.Branch.Name(),
			Nayin:    a.NayinName,
		})
	}

	keys := make([]string, 0, len(result.ElementTally.Score))
	for k := range result.ElementTally.Score {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	scores := make([]canonicalElementScore, 0, len(keys))
	for _, k := range keys {
		for el, v := range result.ElementTally.Score {
			if el.String() == k {
				scores = append(scores, canonicalElementScore{Element: k, Score: fixed4(v)})
				break
			}
		}
	}

	cc := canonicalChart{
		CivilDateUnix:     result.CivilDate.Unix(),
		LunarYear:         result.LunarDate.Year,
		LunarMonth:        result.LunarDate.Month,
		LunarDay:          result.LunarDate.Day,
		LunarIsLeap:       result.LunarDate.IsLeap,
		Pillars:           pillars,
		ElementScores:     scores,
		DayMasterStrength: result.DayMasterStrength.Status.String(),
		LuckDirection:     result.LuckDirection,
	}

	b, err := json.Marshal(cc)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: failed to marshal canonical chart: %w", err)
	}
	return b, nil
}
