package ornaments

import "github.com/corehuman/bazi-engine/internal/stems"

// ShenshaHit records one detected auxiliary star and the positions that
// bear it.
type ShenshaHit struct {
	Shensha   Shensha
	Positions []stems.Position
}

// positionsWithBranch returns every position in fp whose branch equals
// target.
func positionsWithBranch(fp stems.FourPillars, target stems.Branch) []stems.Position {
	var out []stems.Position
	for _, pos := range fp.Positions() {
		if fp.At(pos).Branch == target {
			out = append(out, pos)
		}
	}
	return out
}

// DetectShensha runs the nine shensha rules against a
// resolved four-pillar chart, anchored on the day stem (NobleMan,
// IntelligenceStar, GoldenJade), the year branch (PeachBlossom,
// TravelingHorse, GeneralStar), and the day pillar's xun (VoidDeath).
// SkyVirtue and MonthVirtue are anchored on the month branch.
func DetectShensha(fp stems.FourPillars) []ShenshaHit {
	var hits []ShenshaHit

	addBranchHit := func(kind Shensha, target stems.Branch) {
		if pos := positionsWithBranch(fp, target); len(pos) > 0 {
			hits = append(hits, ShenshaHit{Shensha: kind, Positions: pos})
		}
	}

	nobleMan := NobleManBranches(fp.Day.Stem)
	for _, b := range nobleMan {
		addBranchHit(NobleMan, b)
	}

	addBranchHit(PeachBlossom, PeachBlossomBranch(fp.Year.Branch))
	addBranchHit(TravelingHorse, TravelingHorseBranch(fp.Year.Branch))
	addBranchHit(GeneralStar, GeneralStarBranch(fp.Year.Branch))
	addBranchHit(IntelligenceStar, IntelligenceStarBranch(fp.Day.Stem))
	addBranchHit(GoldenJade, GoldenJadeBranch(fp.Day.Stem))

	monthVirtueStem := MonthVirtueStem(fp.Month.Branch)
	var monthVirtuePositions []stems.Position
	for _, pos := range fp.Positions() {
		if fp.At(pos).Stem == monthVirtueStem {
			monthVirtuePositions = append(monthVirtuePositions, pos)
		}
	}
	if len(monthVirtuePositions) > 0 {
		hits = append(hits, ShenshaHit{Shensha: MonthVirtue, Positions: monthVirtuePositions})
	}

	var skyVirtuePositions []stems.Position
	for _, pos := range fp.Positions() {
		p := fp.At(pos)
		if HasSkyVirtueStem(fp.Month.Branch, p.Stem) || HasSkyVirtueBranch(fp.Month.Branch, p.Branch) {
			skyVirtuePositions = append(skyVirtuePositions, pos)
		}
	}
	if len(skyVirtuePositions) > 0 {
		hits = append(hits, ShenshaHit{Shensha: SkyVirtue, Positions: skyVirtuePositions})
	}

	void := VoidBranches(fp.Day)
	var voidPositions []stems.Position
	for _, pos := range fp.Positions() {
		b := fp.At(pos).Branch
		if b == void[0] || b == void[1] {
			voidPositions = append(voidPositions, pos)
		}
	}
	if len(voidPositions) > 0 {
		hits = append(hits, ShenshaHit{Shensha: VoidDeath, Positions: voidPositions})
	}

	return hits
}

// BranchRelationHit records one detected branch relation, the positions
// it spans, and (for Three-Harmony and Three-Assembly hits) the element it
// transforms toward. Other kinds, Six-Combine included, leave Element at
// its zero value.
type BranchRelationHit struct {
	Kind      BranchRelationKind
	Positions []stems.Position
	Element   stems.Element
}

// DetectBranchRelations enumerates every 2- and 3-element subset of the
// four pillar branches and matches each against the seven branch
// relation families.
func DetectBranchRelations(fp stems.FourPillars) []BranchRelationHit {
	var hits []BranchRelationHit
	positions := fp.Positions()

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a, b := fp.At(positions[i]).Branch, fp.At(positions[j]).Branch
			pair := []stems.Position{positions[i], positions[j]}
			if BranchSixCombine(a, b) {
				hits = append(hits, BranchRelationHit{Kind: SixCombine, Positions: pair})
			}
			if BranchSixClash(a, b) {
				hits = append(hits, BranchRelationHit{Kind: SixClash, Positions: pair})
			}
			if BranchSixHarm(a, b) {
				hits = append(hits, BranchRelationHit{Kind: SixHarm, Positions: pair})
			}
			if BranchDestruction(a, b) {
				hits = append(hits, BranchRelationHit{Kind: Destruction, Positions: pair})
			}
			if a == mutualPunishPair[0] && b == mutualPunishPair[1] || a == mutualPunishPair[1] && b == mutualPunishPair[0] {
				hits = append(hits, BranchRelationHit{Kind: ThreePunishment, Positions: pair})
			}
		}
	}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 4; k++ {
				trio := []stems.Branch{fp.At(positions[i]).Branch, fp.At(positions[j]).Branch, fp.At(positions[k]).Branch}
				triPos := []stems.Position{positions[i], positions[j], positions[k]}
				if el, ok := BranchThreeHarmony(trio); ok {
					hits = append(hits, BranchRelationHit{Kind: ThreeHarmony, Positions: triPos, Element: el})
				}
				if el, ok := BranchThreeAssembly(trio); ok {
					hits = append(hits, BranchRelationHit{Kind: ThreeAssembly, Positions: triPos, Element: el})
				}
				if BranchThreePunishment(trio) {
					hits = append(hits, BranchRelationHit{Kind: ThreePunishment, Positions: triPos})
				}
			}
		}
	}

	branches := fp.Branches()
	for _, sp := range selfPunishBranches {
		var selfPos []stems.Position
		for _, pos := range positions {
			if fp.At(pos).Branch == sp {
				selfPos = append(selfPos, pos)
			}
		}
		if BranchSelfPunishment(sp, branches[:]) {
			hits = append(hits, BranchRelationHit{Kind: SelfPunishment, Positions: selfPos})
		}
	}

	return hits
}

// StemRelationHit records one detected stem relation: a Five-Combine pair
// (Element set to the element it transforms toward) or an overcome pair
// (Element left zero-value).
type StemRelationHit struct {
	Combine   bool
	Positions []stems.Position
	Element   stems.Element
}

// DetectStemRelations enumerates every pair of the four pillar stems and
// matches Five-Combine pairs and overcome pairs.
func DetectStemRelations(fp stems.FourPillars) []StemRelationHit {
	var hits []StemRelationHit
	positions := fp.Positions()

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a, b := fp.At(positions[i]).Stem, fp.At(positions[j]).Stem
			pair := []stems.Position{positions[i], positions[j]}
			if el, ok := StemCombine(a, b); ok {
				hits = append(hits, StemRelationHit{Combine: true, Positions: pair, Element: el})
			}
			if a.Element().Overcomes(b.Element()) || b.Element().Overcomes(a.Element()) {
				hits = append(hits, StemRelationHit{Combine: false, Positions: pair})
			}
		}
	}
	return hits
}
