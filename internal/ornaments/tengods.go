// Package ornaments implements the L4 layer: derived relational
// annotations on top of a computed set of pillars --
// Ten Gods, Nayin, Shensha, and branch/stem relation detection. Nothing
// here touches astronomical time; all inputs are already-resolved
// stems and branches.
package ornaments

import "github.com/corehuman/bazi-engine/internal/stems"

// TenGod identifies the relationship of a stem to the day master stem,
// classified by same/opposite polarity and the five-element
// generation/overcome cycle.
type TenGod int

const (
	FriendRival TenGod = iota // 比肩 (same element, same polarity)
	RobWealth                 // 劫财 (same element, opposite polarity)
	EatingGod                 // 食神 (day master generates, same polarity)
	HurtingOfficer            // 伤官 (day master generates, opposite polarity)
	IndirectWealth            // 偏财 (day master overcomes, same polarity)
	DirectWealth              // 正财 (day master overcomes, opposite polarity)
	SevenKillings             // 七杀 (overcomes day master, same polarity)
	DirectOfficer             // 正官 (overcomes day master, opposite polarity)
	IndirectResource          // 偏印 (generates day master, same polarity)
	DirectResource            // 正印 (generates day master, opposite polarity)
)

func (g TenGod) String() string {
	names := [...]string{
		"Friend/Rival", "Rob Wealth", "Eating God", "Hurting Officer",
		"Indirect Wealth", "Direct Wealth", "Seven Killings", "Direct Officer",
		"Indirect Resource", "Direct Resource",
	}
	if int(g) < 0 || int(g) >= len(names) {
		return "Unknown"
	}
	return names[g]
}

// TenGodOf classifies other relative to dayMaster via the ten-gods
// matrix: the relation is determined by the five-element cycle
// between the two elements and whether their polarities match.
func TenGodOf(dayMaster, other stems.Stem) TenGod {
	samePolarity := dayMaster.Polarity() == other.Polarity()
	de, oe := dayMaster.Element(), other.Element()

	switch {
	case de == oe:
		if samePolarity {
			return FriendRival
		}
		return RobWealth
	case de.Generates(oe):
		if samePolarity {
			return EatingGod
		}
		return HurtingOfficer
	case de.Overcomes(oe):
		if samePolarity {
			return IndirectWealth
		}
		return DirectWealth
	case oe.Overcomes(de):
		if samePolarity {
			return SevenKillings
		}
		return DirectOfficer
	case oe.Generates(de):
		if samePolarity {
			return IndirectResource
		}
		return DirectResource
	default:
		// The five elements form a closed cycle; one of the above always
		// applies. This branch is unreachable for valid Element values.
		return FriendRival
	}
}
