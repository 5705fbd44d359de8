package data

import "github.com/udisondev/squadsim/internal/model"

// enemyDefs is the built-in target catalog.
var enemyDefs = []model.EnemySpec{
	{Name: "Training Dummy", Level: 90},
	{Name: "Stone Sentinel", Level: 90, Resist: map[model.Element]float64{
		model.ElementPhysical: 0.70, model.ElementGeo: 0.70,
	}},
	{Name: "Ember Slime", Level: 90, Aura: model.ElementPyro, AuraUnits: 1, Resist: map[model.Element]float64{
		model.ElementPyro: 1.0,
	}},
	{Name: "Frost Warden", Level: 100, Resist: map[model.Element]float64{
		model.ElementCryo: 0.50, model.ElementPhysical: 0.30,
	}},
}
