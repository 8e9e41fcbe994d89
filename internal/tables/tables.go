// Package tables holds the static reference catalogs used by the blast-design
// tools: explosive densities, rock-mass blastability indexes and drill-pattern
// burdens. The values come from the published reference model and must not be
// changed without revalidating the fragmentation curves.
package tables

import "fmt"

type Explosive struct {
	Name        string  `json:"name"`
	DensityGCm3 float64 `json:"density_g_cm3"`
}

type RockMass struct {
	Name string  `json:"name"`
	A    float64 `json:"a"` // Kuz-Ram rock factor
}

type Pattern struct {
	Name    string  `json:"name"`
	BurdenM float64 `json:"burden_m"`
}

// Catalog order matters: the front-end selects and the sweep legend follow it.
var Explosives = []Explosive{
	{Name: "ANFO", DensityGCm3: 0.90},
	{Name: "Dinamite granulada", DensityGCm3: 1.1},
	{Name: "Dinamite gelatina", DensityGCm3: 1.4},
	{Name: "Lama encartuchada", DensityGCm3: 1.2},
}

var RockMasses = []RockMass{
	{Name: "Rocha friável de baixa dureza", A: 3},
	{Name: "Rocha branda e pouco fraturada", A: 5},
	{Name: "Rocha dura e altamente fraturada", A: 10},
	{Name: "Rocha altamente dura e pouco fraturada", A: 12},
}

var Patterns = []Pattern{
	{Name: "Aberta", BurdenM: 6.5},
	{Name: "Fechada", BurdenM: 3},
}

func ExplosiveByName(name string) (Explosive, error) {
	for _, e := range Explosives {
		if e.Name == name {
			return e, nil
		}
	}
	return Explosive{}, fmt.Errorf("unknown explosive: %s", name)
}

func RockMassByName(name string) (RockMass, error) {
	for _, m := range RockMasses {
		if m.Name == name {
			return m, nil
		}
	}
	return RockMass{}, fmt.Errorf("unknown rock mass: %s", name)
}

func PatternByName(name string) (Pattern, error) {
	for _, p := range Patterns {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("unknown pattern: %s", name)
}
