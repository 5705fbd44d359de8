package model

// Event is one resolved entry of the output log.
type Event struct {
	Frame       Frame
	Actor       int
	ActorName   string
	Kind        AttackKind
	Ability     string
	Element     Element
	Reaction    ReactionKind
	AppliedAura bool
	AuraAfter   Element
	Damage      float64
	Crit        bool // only set in rolled crit mode
}
