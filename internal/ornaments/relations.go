package ornaments

import "github.com/corehuman/bazi-engine/internal/stems"

// StemRelation identifies a Five-Combine (五合) pairing between two
// heavenly stems, which transforms into a new element under conditions
// left to the caller to apply.
type StemRelation struct {
	A, B         stems.Stem
	TransformsTo stems.Element
}

// stemCombinePairs lists the five canonical stem-combine pairs
//: Jia-Ji -> Earth, Yi-Geng -> Metal, Bing-Xin -> Water,
// Ding-Ren -> Wood, Wu-Gui -> Fire.
var stemCombinePairs = []StemRelation{
	{stems.Jia, stems.Ji, stems.Earth},
	{stems.Yi, stems.Geng, stems.Metal},
	{stems.Bing, stems.Xin, stems.Water},
	{stems.Ding, stems.Ren, stems.Wood},
	{stems.Wu, stems.Gui, stems.Fire},
}

// StemCombine reports whether a and b form a Five-Combine pair, and if
// so, the element their combination transforms toward.
func StemCombine(a, b stems.Stem) (stems.Element, bool) {
	for _, pair := range stemCombinePairs {
		if (pair.A == a && pair.B == b) || (pair.A == b && pair.B == a) {
			return pair.TransformsTo, true
		}
	}
	return 0, false
}

// BranchRelationKind enumerates the seven branch-relation families:
// Six-Combine, Three-Harmony, Three-Assembly,
// Six-Clash, Six-Harm, Three-Punishment (incl. self-punishment), and
// Destruction.
type BranchRelationKind int

const (
	SixCombine BranchRelationKind = iota
	ThreeHarmony
	ThreeAssembly
	SixClash
	SixHarm
	ThreePunishment
	SelfPunishment
	Destruction
)

func (k BranchRelationKind) String() string {
	names := [...]string{
		"Six-Combine", "Three-Harmony", "Three-Assembly", "Six-Clash",
		"Six-Harm", "Three-Punishment", "Self-Punishment", "Destruction",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// sixCombinePairs: Zi-Chou, Yin-Hai, Mao-Xu, Chen-You, Si-Shen, Wu-Wei.
var sixCombinePairs = [6][2]stems.Branch{
	{stems.Zi, stems.Chou}, {stems.Yin_, stems.Hai}, {stems.Mao, stems.Xu},
	{stems.Chen, stems.You}, {stems.Si, stems.Shen}, {stems.Wu_, stems.Wei},
}

// sixClashPairs: Zi-Wu, Chou-Wei, Yin-Shen, Mao-You, Chen-Xu, Si-Hai.
var sixClashPairs = [6][2]stems.Branch{
	{stems.Zi, stems.Wu_}, {stems.Chou, stems.Wei}, {stems.Yin_, stems.Shen},
	{stems.Mao, stems.You}, {stems.Chen, stems.Xu}, {stems.Si, stems.Hai},
}

// sixHarmPairs: Zi-Wei, Chou-Wu, Yin-Si, Mao-Chen, Shen-Hai, You-Xu.
var sixHarmPairs = [6][2]stems.Branch{
	{stems.Zi, stems.Wei}, {stems.Chou, stems.Wu_}, {stems.Yin_, stems.Si},
	{stems.Mao, stems.Chen}, {stems.Shen, stems.Hai}, {stems.You, stems.Xu},
}

// destructionPairs: Zi-You, Chou-Chen, Yin-Hai, Mao-Wu, Si-Shen, Xu-Wei.
var destructionPairs = [6][2]stems.Branch{
	{stems.Zi, stems.You}, {stems.Chou, stems.Chen}, {stems.Yin_, stems.Hai},
	{stems.Mao, stems.Wu_}, {stems.Si, stems.Shen}, {stems.Xu, stems.Wei},
}

// threeHarmonyGroups: Shen-Zi-Chen (Water), Hai-Mao-Wei (Wood),
// Yin-Wu-Xu (Fire), Si-You-Chou (Metal).
var threeHarmonyGroups = []struct {
	Branches [3]stems.Branch
	Element  stems.Element
}{
	{[3]stems.Branch{stems.Shen, stems.Zi, stems.Chen}, stems.Water},
	{[3]stems.Branch{stems.Hai, stems.Mao, stems.Wei}, stems.Wood},
	{[3]stems.Branch{stems.Yin_, stems.Wu_, stems.Xu}, stems.Fire},
	{[3]stems.Branch{stems.Si, stems.You, stems.Chou}, stems.Metal},
}

// threeAssemblyGroups (方局): Yin-Mao-Chen (Wood), Si-Wu-Wei (Fire),
// Shen-You-Xu (Metal), Hai-Zi-Chou (Water).
var threeAssemblyGroups = []struct {
	Branches [3]stems.Branch
	Element  stems.Element
}{
	{[3]stems.Branch{stems.Yin_, stems.Mao, stems.Chen}, stems.Wood},
	{[3]stems.Branch{stems.Si, stems.Wu_, stems.Wei}, stems.Fire},
	{[3]stems.Branch{stems.Shen, stems.You, stems.Xu}, stems.Metal},
	{[3]stems.Branch{stems.Hai, stems.Zi, stems.Chou}, stems.Water},
}

// threePunishGroups lists the non-self punishment triads: Yin-Si-Shen
// (uncivil), Chou-Xu-Wei (ungrateful). Zi-Mao is a mutual (two-branch)
// punishment, handled separately below.
var threePunishGroups = [][3]stems.Branch{
	{stems.Yin_, stems.Si, stems.Shen},
	{stems.Chou, stems.Xu, stems.Wei},
}

var mutualPunishPair = [2]stems.Branch{stems.Zi, stems.Mao}

// selfPunishBranches are the four branches that punish themselves when
// duplicated in a chart: Chen, Wu, You, Hai.
var selfPunishBranches = [4]stems.Branch{stems.Chen, stems.Wu_, stems.You, stems.Hai}

func pairMatches(pairs [6][2]stems.Branch, a, b stems.Branch) bool {
	for _, p := range pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

// BranchSixCombine reports whether a and b form a Six-Combine pair.
func BranchSixCombine(a, b stems.Branch) bool { return pairMatches(sixCombinePairs, a, b) }

// BranchSixClash reports whether a and b form a Six-Clash pair.
func BranchSixClash(a, b stems.Branch) bool { return pairMatches(sixClashPairs, a, b) }

// BranchSixHarm reports whether a and b form a Six-Harm pair.
func BranchSixHarm(a, b stems.Branch) bool { return pairMatches(sixHarmPairs, a, b) }

// BranchDestruction reports whether a and b form a Destruction pair.
func BranchDestruction(a, b stems.Branch) bool { return pairMatches(destructionPairs, a, b) }

// BranchThreeHarmony reports whether the three given branches (in any
// order, duplicates ignored) complete a Three-Harmony triad, and if so
// the element it transforms toward. A set holding only two legs of a
// triad is not reported.
func BranchThreeHarmony(branches []stems.Branch) (stems.Element, bool) {
	for _, g := range threeHarmonyGroups {
		if containsAll(branches, g.Branches[:]) {
			return g.Element, true
		}
	}
	return 0, false
}

// BranchThreeAssembly reports whether the branches complete a
// directional Three-Assembly triad.
func BranchThreeAssembly(branches []stems.Branch) (stems.Element, bool) {
	for _, g := range threeAssemblyGroups {
		if containsAll(branches, g.Branches[:]) {
			return g.Element, true
		}
	}
	return 0, false
}

// BranchThreePunishment reports whether the branches complete one of
// the two three-member punishment triads, or the Zi-Mao mutual pair.
func BranchThreePunishment(branches []stems.Branch) bool {
	for _, g := range threePunishGroups {
		if containsAll(branches, g[:]) {
			return true
		}
	}
	return containsAll(branches, mutualPunishPair[:])
}

// BranchSelfPunishment reports whether branch appears at least twice
// among branches and is one of the four self-punishing branches.
func BranchSelfPunishment(branch stems.Branch, branches []stems.Branch) bool {
	isSelfPunishing := false
	for _, b := range selfPunishBranches {
		if b == branch {
			isSelfPunishing = true
			break
		}
	}
	if !isSelfPunishing {
		return false
	}
	count := 0
	for _, b := range branches {
		if b == branch {
			count++
		}
	}
	return count >= 2
}

func containsAll(haystack, needles []stems.Branch) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
