package model

import (
	"fmt"
	"strings"
)

// Element is an elemental tag carried by attacks and auras.
type Element uint8

const (
	ElementNone Element = iota // neutral aura
	ElementPhysical
	ElementPyro
	ElementHydro
	ElementElectro
	ElementCryo
	ElementAnemo
	ElementGeo
	ElementDendro
	ElementQuicken // aura-only, produced by the Quicken reaction

	ElementCount
)

var elementNames = [ElementCount]string{
	ElementNone:     "none",
	ElementPhysical: "physical",
	ElementPyro:     "pyro",
	ElementHydro:    "hydro",
	ElementElectro:  "electro",
	ElementCryo:     "cryo",
	ElementAnemo:    "anemo",
	ElementGeo:      "geo",
	ElementDendro:   "dendro",
	ElementQuicken:  "quicken",
}

func (e Element) String() string {
	if e >= ElementCount {
		return fmt.Sprintf("element(%d)", uint8(e))
	}
	return elementNames[e]
}

// CanLinger reports whether the element can stay on the target as an aura.
// Anemo, Geo and Physical only ever react.
func (e Element) CanLinger() bool {
	switch e {
	case ElementPyro, ElementHydro, ElementElectro, ElementCryo, ElementDendro, ElementQuicken:
		return true
	default:
		return false
	}
}

// IsElemental reports whether attacks of this element interact with auras at all.
func (e Element) IsElemental() bool {
	return e != ElementNone && e != ElementPhysical && e < ElementCount
}

// ParseElement parses a lowercase element name.
func ParseElement(s string) (Element, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range elementNames {
		if name == s {
			return Element(i), nil
		}
	}
	return ElementNone, fmt.Errorf("unknown element %q", s)
}

// MarshalYAML encodes the element by name.
func (e Element) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML decodes an element name.
func (e *Element) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseElement(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}
