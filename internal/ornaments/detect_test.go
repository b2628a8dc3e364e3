package ornaments

import (
	"testing"

	"github.com/corehuman/bazi-engine/internal/stems"
)

func sampleChart() stems.FourPillars {
	return stems.FourPillars{
		Year:  stems.Pillar{Stem: stems.Jia, Branch: stems.Zi},
		Month: stems.Pillar{Stem: stems.Bing, Branch: stems.Yin_},
		Day:   stems.Pillar{Stem: stems.Jia, Branch: stems.Wu_},
		Hour:  stems.Pillar{Stem: stems.Geng, Branch: stems.Chou},
	}
}

func TestDetectShenshaFindsNobleMan(t *testing.T) {
	fp := sampleChart()
	hits := DetectShensha(fp)
	found := false
	for _, h := range hits {
		if h.Shensha == NobleMan {
			found = true
		}
	}
	// Jia's Noble Man branches are Chou and Wei; the hour branch is Chou.
	if !found {
		t.Error("expected Noble Man hit for day stem Jia with hour branch Chou present")
	}
}

func TestDetectBranchRelationsFindsSixCombine(t *testing.T) {
	fp := stems.FourPillars{
		Year:  stems.Pillar{Stem: stems.Jia, Branch: stems.Zi},
		Month: stems.Pillar{Stem: stems.Yi, Branch: stems.Chou},
		Day:   stems.Pillar{Stem: stems.Bing, Branch: stems.Yin_},
		Hour:  stems.Pillar{Stem: stems.Ding, Branch: stems.Mao},
	}
	hits := DetectBranchRelations(fp)
	found := false
	for _, h := range hits {
		if h.Kind == SixCombine {
			found = true
		}
	}
	if !found {
		t.Error("expected Six-Combine hit for Zi-Chou")
	}
}

func TestDetectStemRelationsFindsCombine(t *testing.T) {
	fp := stems.FourPillars{
		Year:  stems.Pillar{Stem: stems.Jia, Branch: stems.Zi},
		Month: stems.Pillar{Stem: stems.Ji, Branch: stems.Chou},
		Day:   stems.Pillar{Stem: stems.Bing, Branch: stems.Yin_},
		Hour:  stems.Pillar{Stem: stems.Ding, Branch: stems.Mao},
	}
	hits := DetectStemRelations(fp)
	found := false
	for _, h := range hits {
		if h.Combine && h.Element == stems.Earth {
			found = true
		}
	}
	if !found {
		t.Error("expected Jia-Ji combine hit transforming to Earth")
	}
}
