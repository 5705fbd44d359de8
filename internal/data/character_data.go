package data

import "github.com/udisondev/squadsim/internal/model"

// characterDefs is the built-in character catalog. Frame values are at 60 fps.
var characterDefs = []model.CharacterSpec{
	{
		Name: "Kaen", Element: model.ElementPyro, WeaponType: model.WeaponPolearm,
		Level: 90, BaseHP: 10875, BaseATK: 225, BaseDEF: 669, EnergyCost: 80,
		Version: "1.0", Kit: "ember",
		Bonus: map[model.Stat]float64{model.StatEM: 96},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.831, Hits: 1, HitMark: 12, Frames: 20},
				{Mult: 0.833, Hits: 1, HitMark: 10, Frames: 22},
				{Mult: 0.516, Hits: 2, HitMark: 12, Spacing: 8, Frames: 28},
				{Mult: 0.279, Hits: 4, HitMark: 14, Spacing: 5, Frames: 34},
				{Mult: 1.41, Hits: 1, HitMark: 22, Frames: 52},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    90,
			Charged:       &model.Ability{Name: "Lunge", Mult: 2.43, Hits: 1, HitMark: 20, Frames: 60},
			Skill: model.Ability{
				Name: "Turret", Frames: 39, Cooldown: 720,
				Particles: 4, ParticleDelay: 100,
				Ticks: 4, TickStart: 126, TickEvery: 96, TickMult: 2.0, TickUnits: 1, TickICD: "ember_turret",
			},
			Burst: model.Ability{
				Name: "Wheel", Mult: 0.72, Hits: 3, HitMark: 18, Spacing: 16, Frames: 80, Cooldown: 1200,
				Units: 1, ICD: model.ICDBurst,
				Ticks: 10, TickStart: 82, TickEvery: 72, TickMult: 2.24, TickUnits: 1, TickICD: "ember_wheel",
			},
		},
	},
	{
		Name: "Mizuha", Element: model.ElementHydro, WeaponType: model.WeaponSword,
		Level: 90, BaseHP: 10222, BaseATK: 202, BaseDEF: 758, EnergyCost: 80,
		Version: "1.0", Kit: "tide",
		Bonus: map[model.Stat]float64{model.StatATKPercent: 0.24},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.921, Hits: 1, HitMark: 9, Frames: 18},
				{Mult: 0.942, Hits: 1, HitMark: 11, Frames: 22},
				{Mult: 0.565, Hits: 2, HitMark: 10, Spacing: 9, Frames: 30},
				{Mult: 1.107, Hits: 1, HitMark: 16, Frames: 30},
				{Mult: 0.709, Hits: 2, HitMark: 18, Spacing: 12, Frames: 48},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    80,
			Skill: model.Ability{
				Name: "Twin Cut", Mult: 1.79, Hits: 2, HitMark: 20, Spacing: 18, Frames: 65, Cooldown: 1260,
				Units: 1, ICD: model.ICDSkill, Particles: 5, ParticleDelay: 100,
			},
			Burst: model.Ability{Name: "Rain Curtain", Frames: 40, Cooldown: 1200},
		},
	},
	{
		Name: "Hata", Element: model.ElementPyro, WeaponType: model.WeaponSword,
		Level: 90, BaseHP: 12397, BaseATK: 191, BaseDEF: 771, EnergyCost: 60,
		Version: "1.0", Kit: "banner",
		Bonus: map[model.Stat]float64{model.StatER: 0.267},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.88, Hits: 1, HitMark: 10, Frames: 20},
				{Mult: 0.845, Hits: 1, HitMark: 12, Frames: 24},
				{Mult: 1.08, Hits: 1, HitMark: 14, Frames: 28},
				{Mult: 1.18, Hits: 1, HitMark: 15, Frames: 30},
				{Mult: 1.42, Hits: 1, HitMark: 22, Frames: 46},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    80,
			Skill: model.Ability{
				Name: "Surge", Mult: 2.58, Hits: 1, HitMark: 16, Frames: 42, Cooldown: 300,
				Units: 2, ICD: model.ICDSkill, Particles: 2, ParticleDelay: 80,
			},
			SkillHold: &model.Ability{
				Name: "Surge Charged", Mult: 1.76, Hits: 2, HitMark: 70, Spacing: 15, Frames: 98, Cooldown: 450,
				Units: 1, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 120,
			},
			Burst: model.Ability{
				Name: "Banner Field", Mult: 4.66, Hits: 1, HitMark: 37, Frames: 50, Cooldown: 900,
				Units: 2, ICD: model.ICDBurst,
			},
		},
	},
	{
		Name: "Fuu", Element: model.ElementAnemo, WeaponType: model.WeaponCatalyst,
		Level: 90, BaseHP: 9244, BaseATK: 170, BaseDEF: 703, EnergyCost: 80,
		Version: "1.0", Kit: "gale",
		Bonus: map[model.Stat]float64{model.StatAnemoDMG: 0.24},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.603, Hits: 1, HitMark: 11, Frames: 19},
				{Mult: 0.551, Hits: 1, HitMark: 12, Frames: 21},
				{Mult: 0.693, Hits: 1, HitMark: 14, Frames: 27},
				{Mult: 0.864, Hits: 1, HitMark: 17, Frames: 40},
			},
			NormalElement: model.ElementAnemo,
			NormalUnits:   1,
			ComboReset:    70,
			Charged:       &model.Ability{Name: "Gust", Mult: 2.16, Hits: 1, HitMark: 48, Frames: 60, Units: 1, ICD: model.ICDCharged},
			Skill: model.Ability{
				Name: "Whirl", Mult: 3.8, Hits: 1, HitMark: 40, Frames: 58, Cooldown: 900,
				Units: 1, ICD: model.ICDSkill, Particles: 4, ParticleDelay: 110,
			},
			Burst: model.Ability{
				Name: "Vortex", Frames: 72, Cooldown: 1200,
				Ticks: 6, TickStart: 100, TickEvery: 118, TickMult: 1.48, TickUnits: 1, TickICD: model.ICDBurst,
			},
		},
	},
	{
		Name: "Raiko", Element: model.ElementElectro, WeaponType: model.WeaponBow,
		Level: 90, BaseHP: 9189, BaseATK: 244, BaseDEF: 594, EnergyCost: 60,
		Version: "1.0", Kit: "standard",
		Bonus: map[model.Stat]float64{model.StatATKPercent: 0.24},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.882, Hits: 1, HitMark: 15, Frames: 21},
				{Mult: 0.936, Hits: 1, HitMark: 14, Frames: 22},
				{Mult: 1.163, Hits: 1, HitMark: 18, Frames: 27},
				{Mult: 1.154, Hits: 1, HitMark: 18, Frames: 29},
				{Mult: 1.442, Hits: 1, HitMark: 24, Frames: 50},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    80,
			Charged:       &model.Ability{Name: "Aimed Shot", Mult: 2.23, Hits: 1, HitMark: 86, Frames: 94, Units: 1, ICD: model.ICDCharged},
			Skill: model.Ability{
				Name: "Raven", Mult: 2.09, Hits: 1, HitMark: 30, Frames: 42, Cooldown: 1500,
				Units: 1, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 90,
				Ticks: 10, TickStart: 90, TickEvery: 60, TickMult: 1.6, TickUnits: 1, TickICD: model.ICDSkill,
			},
			Burst: model.Ability{
				Name: "Storm Dive", Mult: 2.08, Hits: 1, HitMark: 20, Frames: 40, Cooldown: 900,
				Units: 1, ICD: model.ICDBurst,
				Ticks: 10, TickStart: 40, TickEvery: 60, TickMult: 1.6, TickUnits: 1, TickICD: model.ICDSkill,
			},
		},
	},
	{
		Name: "Hyoga", Element: model.ElementCryo, WeaponType: model.WeaponClaymore,
		Level: 90, BaseHP: 13103, BaseATK: 242, BaseDEF: 799, EnergyCost: 60,
		Version: "1.1", Kit: "standard",
		Bonus: map[model.Stat]float64{model.StatCritDMG: 0.384},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 1.4, Hits: 1, HitMark: 30, Frames: 44},
				{Mult: 1.3, Hits: 1, HitMark: 30, Frames: 46},
				{Mult: 1.64, Hits: 1, HitMark: 36, Frames: 56},
				{Mult: 2.12, Hits: 1, HitMark: 44, Frames: 80},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    90,
			Skill: model.Ability{
				Name: "Glacier", Mult: 4.9, Hits: 1, HitMark: 28, Frames: 50, Cooldown: 540,
				Units: 2, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 95,
			},
			Burst: model.Ability{
				Name: "Avalanche", Mult: 2.4, Hits: 1, HitMark: 60, Frames: 90, Cooldown: 900,
				Units: 2, ICD: model.ICDBurst,
				Ticks: 4, TickStart: 120, TickEvery: 90, TickMult: 1.2, TickUnits: 1, TickICD: model.ICDBurst,
			},
		},
	},
	{
		Name: "Midori", Element: model.ElementDendro, WeaponType: model.WeaponCatalyst,
		Level: 90, BaseHP: 10360, BaseATK: 299, BaseDEF: 630, EnergyCost: 50,
		Version: "3.2", Kit: "standard",
		Bonus: map[model.Stat]float64{model.StatEM: 115},
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 0.72, Hits: 1, HitMark: 10, Frames: 18},
				{Mult: 0.66, Hits: 1, HitMark: 11, Frames: 20},
				{Mult: 0.82, Hits: 1, HitMark: 13, Frames: 26},
				{Mult: 1.04, Hits: 1, HitMark: 16, Frames: 40},
			},
			NormalElement: model.ElementDendro,
			NormalUnits:   1,
			ComboReset:    70,
			Skill: model.Ability{
				Name: "Seed Mark", Mult: 1.78, Hits: 1, HitMark: 24, Frames: 40, Cooldown: 300,
				Units: 1, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 80,
			},
			SkillHold: &model.Ability{
				Name: "Seed Field", Mult: 2.34, Hits: 1, HitMark: 60, Frames: 80, Cooldown: 360,
				Units: 1, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 110,
			},
			Burst: model.Ability{
				Name: "Canopy", Mult: 3.1, Hits: 1, HitMark: 50, Frames: 70, Cooldown: 810,
				Units: 2, ICD: model.ICDBurst,
			},
		},
	},
}
