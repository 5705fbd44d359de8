package model

// Attack is one damage-dealing event.
//
// Everything except ApplyAura, MultBonus and FlatDamage is fixed when the
// attack is built. ApplyAura is written by the ICD pass; MultBonus and
// FlatDamage are written once from the modifier accumulator.
type Attack struct {
	Seq     uint64 // queue insertion order, assigned by the queue
	Kind    AttackKind
	Actor   int
	Ability string
	Mult    float64
	Element Element
	Units   float64 // gauge units applied when ApplyAura is set
	Frame   Frame
	ICD     ICDKey

	ApplyAura  bool
	MultBonus  float64
	FlatDamage float64
}

// Elemental reports whether the attack can interact with auras.
func (a *Attack) Elemental() bool {
	return a.Element.IsElemental() && a.Units > 0
}
