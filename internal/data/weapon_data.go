package data

import "github.com/udisondev/squadsim/internal/model"

// weaponDefs is the built-in weapon catalog at refinement 1.
var weaponDefs = []model.WeaponSpec{
	{Name: "Practice Blade", Type: model.WeaponSword, BaseATK: 401, SubStat: model.StatATKPercent, SubValue: 0.184, Refinement: 1, Effect: "plain"},
	{Name: "Flameforged Blade", Type: model.WeaponSword, BaseATK: 510, SubStat: model.StatATKPercent, SubValue: 0.413, Refinement: 1, Effect: "flameforged"},
	{Name: "Ironwood Greatsword", Type: model.WeaponClaymore, BaseATK: 510, SubStat: model.StatATKPercent, SubValue: 0.413, Refinement: 1, Effect: "plain"},
	{Name: "Cinder Maul", Type: model.WeaponClaymore, BaseATK: 565, SubStat: model.StatCritRate, SubValue: 0.184, Refinement: 1, Effect: "flameforged"},
	{Name: "Ash Pike", Type: model.WeaponPolearm, BaseATK: 454, SubStat: model.StatCritRate, SubValue: 0.221, Refinement: 1, Effect: "plain"},
	{Name: "Wavecutter Spear", Type: model.WeaponPolearm, BaseATK: 510, SubStat: model.StatER, SubValue: 0.459, Refinement: 5, Effect: "wavecutter"},
	{Name: "Hunter's Bow", Type: model.WeaponBow, BaseATK: 565, SubStat: model.StatCritRate, SubValue: 0.276, Refinement: 1, Effect: "plain"},
	{Name: "Wavecutter Bow", Type: model.WeaponBow, BaseATK: 510, SubStat: model.StatER, SubValue: 0.459, Refinement: 1, Effect: "wavecutter"},
	{Name: "Apprentice Codex", Type: model.WeaponCatalyst, BaseATK: 354, SubStat: model.StatATKPercent, SubValue: 0.109, Refinement: 1, Effect: "plain"},
	{Name: "Resonant Codex", Type: model.WeaponCatalyst, BaseATK: 542, SubStat: model.StatEM, SubValue: 265, Refinement: 1, Effect: "resonant_codex"},
	{Name: "Tidal Lens", Type: model.WeaponCatalyst, BaseATK: 510, SubStat: model.StatER, SubValue: 0.459, Refinement: 1, Effect: "tidal_lens"},
	{Name: "Tidal Edge", Type: model.WeaponSword, BaseATK: 454, SubStat: model.StatER, SubValue: 0.613, Refinement: 1, Effect: "tidal_lens"},
}
