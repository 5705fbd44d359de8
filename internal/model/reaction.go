package model

import "fmt"

// ReactionKind names an elemental reaction.
type ReactionKind uint8

const (
	ReactionNone ReactionKind = iota
	ReactionVaporize
	ReactionMelt
	ReactionOverloaded
	ReactionSuperconduct
	ReactionElectroCharged
	ReactionSwirl
	ReactionBloom
	ReactionFrozen
	ReactionCrystallize
	ReactionQuicken
	ReactionAggravate
	ReactionSpread

	ReactionKindCount
)

var reactionNames = [ReactionKindCount]string{
	ReactionNone:           "none",
	ReactionVaporize:       "vaporize",
	ReactionMelt:           "melt",
	ReactionOverloaded:     "overloaded",
	ReactionSuperconduct:   "superconduct",
	ReactionElectroCharged: "electro_charged",
	ReactionSwirl:          "swirl",
	ReactionBloom:          "bloom",
	ReactionFrozen:         "frozen",
	ReactionCrystallize:    "crystallize",
	ReactionQuicken:        "quicken",
	ReactionAggravate:      "aggravate",
	ReactionSpread:         "spread",
}

func (r ReactionKind) String() string {
	if r >= ReactionKindCount {
		return fmt.Sprintf("reaction(%d)", uint8(r))
	}
	return reactionNames[r]
}

// ReactionCategory groups reactions by how they change damage.
type ReactionCategory uint8

const (
	CategoryNone           ReactionCategory = iota
	CategoryAmplifying                      // multiplies the triggering hit
	CategoryTransformative                  // independent damage scaled by level and EM
	CategoryAdditive                        // flat damage added to the triggering hit
)

func (c ReactionCategory) String() string {
	switch c {
	case CategoryAmplifying:
		return "amplifying"
	case CategoryTransformative:
		return "transformative"
	case CategoryAdditive:
		return "additive"
	default:
		return "none"
	}
}
