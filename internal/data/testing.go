package data

import "github.com/udisondev/squadsim/internal/model"

// TestCharacter returns a minimal valid character spec for cross-package
// tests: one single-hit swing, a plain skill and burst, no ticks.
func TestCharacter(name string, el model.Element, kit string) *model.CharacterSpec {
	return &model.CharacterSpec{
		Name: name, Element: el, WeaponType: model.WeaponSword,
		Level: 90, BaseHP: 10000, BaseATK: 200, BaseDEF: 600, EnergyCost: 60,
		Kit: kit,
		Talents: model.Talents{
			Normals: []model.Swing{
				{Mult: 1, Hits: 1, HitMark: 5, Frames: 20},
				{Mult: 1, Hits: 1, HitMark: 5, Frames: 20},
				{Mult: 1, Hits: 1, HitMark: 5, Frames: 20},
			},
			NormalElement: model.ElementPhysical,
			ComboReset:    30,
			Skill: model.Ability{
				Name: "Test Skill", Mult: 2, Hits: 1, HitMark: 10, Frames: 30, Cooldown: 300,
				Units: 1, ICD: model.ICDSkill, Particles: 3, ParticleDelay: 60,
			},
			Burst: model.Ability{
				Name: "Test Burst", Mult: 4, Hits: 1, HitMark: 20, Frames: 60, Cooldown: 600,
				Units: 2, ICD: model.ICDBurst,
			},
		},
	}
}

// TestWeapon returns a plain sword with no secondary stat value.
func TestWeapon() *model.WeaponSpec {
	return &model.WeaponSpec{
		Name: "Test Sword", Type: model.WeaponSword, BaseATK: 100,
		SubStat: model.StatATKPercent, Refinement: 1, Effect: "plain",
	}
}

// TestEnemy returns a level 90 target with default resistances.
func TestEnemy() *model.EnemySpec {
	return &model.EnemySpec{Name: "Test Target", Level: 90}
}

// TestRoster builds roster slots for specs, all wielding TestWeapon with
// full energy. The first slot is on field.
func TestRoster(specs ...*model.CharacterSpec) []*model.CharacterData {
	roster := make([]*model.CharacterData, len(specs))
	for i, s := range specs {
		c, err := model.NewCharacterData(i, s, TestWeapon(), nil, i == 0, s.EnergyCost)
		if err != nil {
			panic(err)
		}
		roster[i] = c
	}
	return roster
}
