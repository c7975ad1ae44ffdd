// internal/defs/units.go
package defs

// UnitDefinition holds all the static data for a troop kind.
type UnitDefinition struct {
	Kind        UnitKind
	Label       string
	Radius      float64
	Health      float64
	Speed       float64 // px/s along the lane
	HitDamage   float64 // feeds the impact formula
	HitCooldown float64 // seconds without dealing/taking collision damage after a hit
	BounceSpeed float64 // forced retreat speed after a hit
	BounceTime  float64 // forced retreat duration
	Cost        float64 // energy
}

// Mass is used only to share impact damage between two colliding troops.
func (d UnitDefinition) Mass() float64 {
	return d.Radius * d.Radius
}

// UnitKinds lists the kinds in spawn-button order.
var UnitKinds = []UnitKind{KindStriker, KindBrute, KindTank}

// UnitLibrary is the fixed table of troop stats, keyed by kind.
var UnitLibrary = map[UnitKind]UnitDefinition{
	KindStriker: {
		Kind:        KindStriker,
		Label:       "STRIKE",
		Radius:      10,
		Health:      26,
		Speed:       125,
		HitDamage:   8,
		HitCooldown: 0.20,
		BounceSpeed: 120,
		BounceTime:  0.18,
		Cost:        16,
	},
	KindBrute: {
		Kind:        KindBrute,
		Label:       "BRUTE",
		Radius:      14,
		Health:      56,
		Speed:       88,
		HitDamage:   13,
		HitCooldown: 0.33,
		BounceSpeed: 98,
		BounceTime:  0.16,
		Cost:        22,
	},
	KindTank: {
		Kind:        KindTank,
		Label:       "TANK",
		Radius:      20,
		Health:      130,
		Speed:       54,
		HitDamage:   27,
		HitCooldown: 0.55,
		BounceSpeed: 62,
		BounceTime:  0.12,
		Cost:        36,
	},
}

// LookupUnit returns the definition for kind.
func LookupUnit(kind UnitKind) (UnitDefinition, bool) {
	def, ok := UnitLibrary[kind]
	return def, ok
}
