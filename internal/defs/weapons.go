// internal/defs/weapons.go
package defs

// WeaponDefinition describes a tower weapon preset. Damage is flat: no falloff,
// no knockback.
//
// Presets are tuned against troop health (striker 26, brute 56, tank 130):
// Crossbow one-shots a striker and two-shots a brute, Ballista one-shots a brute
// and three-shots a tank, Catapult leaves a tank at 4 hp.
type WeaponDefinition struct {
	Name             WeaponName
	Description      string
	Cooldown         float64
	ProjectileSpeed  float64
	ProjectileRadius float64
	Damage           float64
}

// WeaponChoices lists presets in loadout order.
var WeaponChoices = []WeaponName{WeaponCrossbow, WeaponBallista, WeaponCatapult}

// WeaponLibrary is the fixed table of weapon presets.
var WeaponLibrary = map[WeaponName]WeaponDefinition{
	WeaponCrossbow: {
		Name:             WeaponCrossbow,
		Description:      "1-shots Striker • Fast reload",
		Cooldown:         0.42,
		ProjectileSpeed:  620,
		ProjectileRadius: 5,
		Damage:           30,
	},
	WeaponBallista: {
		Name:             WeaponBallista,
		Description:      "1-shots Brute • Medium reload",
		Cooldown:         0.92,
		ProjectileSpeed:  470,
		ProjectileRadius: 7,
		Damage:           56,
	},
	WeaponCatapult: {
		Name:             WeaponCatapult,
		Description:      "Almost 1-shots Tank • Slow reload",
		Cooldown:         1.90,
		ProjectileSpeed:  330,
		ProjectileRadius: 10,
		Damage:           126,
	},
}

// LookupWeapon returns the preset for name.
func LookupWeapon(name WeaponName) (WeaponDefinition, bool) {
	def, ok := WeaponLibrary[name]
	return def, ok
}
