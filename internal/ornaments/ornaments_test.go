package ornaments

import (
	"testing"

	"github.com/corehuman/bazi-engine/internal/stems"
)

func TestTenGodOfSelfIsFriendRival(t *testing.T) {
	if g := TenGodOf(stems.Jia, stems.Jia); g != FriendRival {
		t.Errorf("Jia vs Jia = %v, want FriendRival", g)
	}
}

func TestTenGodOfCoversAllPairs(t *testing.T) {
	seen := map[TenGod]bool{}
	for i := stems.Jia; i <= stems.Gui; i++ {
		seen[TenGodOf(stems.Jia, i)] = true
	}
	if len(seen) != 10 {
		t.Errorf("Jia against all 10 stems produced %d distinct ten-gods, want 10", len(seen))
	}
}

func TestStemCombinePairs(t *testing.T) {
	el, ok := StemCombine(stems.Jia, stems.Ji)
	if !ok || el != stems.Earth {
		t.Errorf("Jia-Ji combine = (%v, %v), want (Earth, true)", el, ok)
	}
	if _, ok := StemCombine(stems.Jia, stems.Bing); ok {
		t.Error("Jia-Bing should not combine")
	}
}

func TestBranchSixClashSymmetric(t *testing.T) {
	if !BranchSixClash(stems.Zi, stems.Wu_) || !BranchSixClash(stems.Wu_, stems.Zi) {
		t.Error("Zi-Wu clash should be symmetric")
	}
}

func TestBranchThreeHarmony(t *testing.T) {
	el, ok := BranchThreeHarmony([]stems.Branch{stems.Shen, stems.Zi, stems.Chen})
	if !ok || el != stems.Water {
		t.Errorf("Shen-Zi-Chen harmony = (%v, %v), want (Water, true)", el, ok)
	}
}

func TestNayinCoversAllSixty(t *testing.T) {
	for i := 0; i < 60; i++ {
		p := stems.PillarFromCycleIndex(i)
		_, name := NayinOf(p)
		if name == "" {
			t.Errorf("nayin missing for cycle index %d", i)
		}
	}
}

func TestMonthVirtueStemByTrinity(t *testing.T) {
	cases := []struct {
		month stems.Branch
		want  stems.Stem
	}{
		{stems.Hai, stems.Jia}, {stems.Mao, stems.Jia}, {stems.Wei, stems.Jia},
		{stems.Yin_, stems.Bing}, {stems.Wu_, stems.Bing}, {stems.Xu, stems.Bing},
		{stems.Si, stems.Geng}, {stems.You, stems.Geng}, {stems.Chou, stems.Geng},
		{stems.Shen, stems.Ren}, {stems.Zi, stems.Ren}, {stems.Chen, stems.Ren},
	}
	for _, c := range cases {
		if got := MonthVirtueStem(c.month); got != c.want {
			t.Errorf("MonthVirtueStem(%s) = %s, want %s", c.month.Name(), got.Name(), c.want.Name())
		}
	}
}

func TestVoidBranchesXunAlignment(t *testing.T) {
	p := stems.PillarFromCycleIndex(0)
	void := VoidBranches(p)
	if void != (xunkongTable[0]) {
		t.Errorf("void branches for index 0 = %v, want %v", void, xunkongTable[0])
	}
}
