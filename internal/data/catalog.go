package data

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/udisondev/squadsim/internal/model"
)

// CharacterTable, WeaponTable and EnemyTable are the global catalog
// registries keyed by lowercase name. Populated by Load.
var (
	CharacterTable map[string]*model.CharacterSpec
	WeaponTable    map[string]*model.WeaponSpec
	EnemyTable     map[string]*model.EnemySpec
)

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetCharacter returns the character spec by name (case-insensitive).
// Returns nil if the character is unknown or the catalog is not loaded.
func GetCharacter(name string) *model.CharacterSpec {
	if CharacterTable == nil {
		return nil
	}
	return CharacterTable[key(name)]
}

// GetWeapon returns the weapon spec by name. Returns nil if not found.
func GetWeapon(name string) *model.WeaponSpec {
	if WeaponTable == nil {
		return nil
	}
	return WeaponTable[key(name)]
}

// GetEnemy returns the enemy spec by name. Returns nil if not found.
func GetEnemy(name string) *model.EnemySpec {
	if EnemyTable == nil {
		return nil
	}
	return EnemyTable[key(name)]
}

// Load builds every catalog table from the Go literals.
func Load() error {
	if err := LoadCharacters(); err != nil {
		return err
	}
	if err := LoadWeapons(); err != nil {
		return err
	}
	return LoadEnemies()
}

// LoadCharacters builds CharacterTable from characterDefs.
func LoadCharacters() error {
	table := make(map[string]*model.CharacterSpec, len(characterDefs))
	for i := range characterDefs {
		spec := &characterDefs[i]
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("load characters: %w", err)
		}
		if _, dup := table[key(spec.Name)]; dup {
			return fmt.Errorf("load characters: duplicate %q", spec.Name)
		}
		table[key(spec.Name)] = spec
	}
	CharacterTable = table
	slog.Info("loaded characters", "count", len(table))
	return nil
}

// LoadWeapons builds WeaponTable from weaponDefs.
func LoadWeapons() error {
	table := make(map[string]*model.WeaponSpec, len(weaponDefs))
	for i := range weaponDefs {
		spec := &weaponDefs[i]
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("load weapons: %w", err)
		}
		if _, dup := table[key(spec.Name)]; dup {
			return fmt.Errorf("load weapons: duplicate %q", spec.Name)
		}
		table[key(spec.Name)] = spec
	}
	WeaponTable = table
	slog.Info("loaded weapons", "count", len(table))
	return nil
}

// LoadEnemies builds EnemyTable from enemyDefs.
func LoadEnemies() error {
	table := make(map[string]*model.EnemySpec, len(enemyDefs))
	for i := range enemyDefs {
		spec := &enemyDefs[i]
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("load enemies: %s: %w", spec.Name, err)
		}
		table[key(spec.Name)] = spec
	}
	EnemyTable = table
	slog.Info("loaded enemies", "count", len(table))
	return nil
}

// CharacterNames returns every catalog character name, sorted.
func CharacterNames() []string {
	names := make([]string, 0, len(CharacterTable))
	for _, c := range CharacterTable {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// WeaponsFor returns the catalog weapons of type wt, sorted by name.
func WeaponsFor(wt model.WeaponType) []*model.WeaponSpec {
	var out []*model.WeaponSpec
	for _, w := range WeaponTable {
		if w.Type == wt {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Refined returns a copy of the named weapon at refinement r.
func Refined(name string, r int) (*model.WeaponSpec, error) {
	w := GetWeapon(name)
	if w == nil {
		return nil, fmt.Errorf("%w: unknown weapon %q", model.ErrInvalidSpec, name)
	}
	cp := *w
	if r != 0 {
		cp.Refinement = r
	}
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return &cp, nil
}
