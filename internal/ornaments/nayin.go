package ornaments

import "github.com/corehuman/bazi-engine/internal/stems"

// nayinTable maps each of the 60 sexagenary cycle indices to its
// Nayin (纳音) "sound" element and name. Pairs of
// adjacent cycle indices share the same Nayin, so the table is built
// from 30 two-entry groups.
var nayinTable = [60]struct {
	Element stems.Element
	Name    string
}{}

type nayinEntry struct {
	name    string
	element stems.Element
}

// nayinGroups lists the 30 Nayin names in sexagenary order, each
// spanning two consecutive cycle indices.
var nayinGroups = [30]nayinEntry{
	{"Sea Gold", stems.Metal}, {"Furnace Fire", stems.Fire},
	{"Great Forest Wood", stems.Wood}, {"Roadside Earth", stems.Earth},
	{"Sword Edge Gold", stems.Metal}, {"Mountain Head Fire", stems.Fire},
	{"Valley Stream Water", stems.Water}, {"City Wall Earth", stems.Earth},
	{"White Wax Metal", stems.Metal}, {"Willow Wood", stems.Wood},
	{"Spring Water", stems.Water}, {"Housetop Earth", stems.Earth},
	{"Thunder Fire", stems.Fire}, {"Pine Wood", stems.Wood},
	{"Long Flowing Water", stems.Water}, {"Sand Gold", stems.Metal},
	{"Mountain Fire", stems.Fire}, {"Plain Wood", stems.Wood},
	{"Wall Earth", stems.Earth}, {"Gold Foil Metal", stems.Metal},
	{"Lamp Fire", stems.Fire}, {"Sky River Water", stems.Water},
	{"Great Post Earth", stems.Earth}, {"Hairpin Metal", stems.Metal},
	{"Mulberry Wood", stems.Wood}, {"Great Stream Water", stems.Water},
	{"Sand Earth", stems.Earth}, {"Heavenly Fire", stems.Fire},
	{"Pomegranate Wood", stems.Wood}, {"Great Sea Water", stems.Water},
}

func init() {
	for i := 0; i < 60; i++ {
		g := nayinGroups[i/2]
		nayinTable[i] = struct {
			Element stems.Element
			Name    string
		}{Element: g.element, Name: g.name}
	}
}

// NayinOf returns the Nayin element and name for a pillar, keyed by
// its sexagenary cycle index.
func NayinOf(p stems.Pillar) (stems.Element, string) {
	idx := p.CycleIndex()
	if idx < 0 || idx >= 60 {
		return stems.Wood, "Unknown"
	}
	entry := nayinTable[idx]
	return entry.Element, entry.Name
}
