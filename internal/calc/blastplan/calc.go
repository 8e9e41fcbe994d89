// Package blastplan evaluates a quarry blast design: hole geometry, charge
// quantities, powder factor and the Kuz-Ram fragmentation parameters.
package blastplan

import (
	"fmt"
	"math"

	formula "Fogo/internal/calc/formula"
	tables "Fogo/internal/tables"
)

// Defaults applied when the corresponding Input field is left at zero.
const (
	DefaultDiameterMM     = 76.2
	DefaultSubdrillM      = 0.6 // 8x diameter
	DefaultInclinationDeg = 15
	DefaultDeviationM     = 0.1
)

// Bench height domain accepted by the front-end slider.
const (
	MinBenchHeightM = 2.0
	MaxBenchHeightM = 15.0
)

type Input struct {
	Explosive      string  `json:"explosive"`
	RockMass       string  `json:"rock_mass"`
	Pattern        string  `json:"pattern"`
	BenchHeightM   float64 `json:"bench_height_m"`
	DiameterMM     float64 `json:"diameter_mm"`
	SubdrillM      float64 `json:"subdrill_m"`
	InclinationDeg float64 `json:"inclination_deg"`
	DeviationM     float64 `json:"deviation_m"`
	HolesPerRow    int     `json:"holes_per_row"`
	Rows           int     `json:"rows"`
}

// GridPoint is one collar position of the rectangular drill grid, in meters.
type GridPoint struct {
	XM float64 `json:"x_m"`
	YM float64 `json:"y_m"`
}

type Result struct {
	HoleLengthM      float64     `json:"hole_length_m"`
	SpacingM         float64     `json:"spacing_m"`
	BurdenM          float64     `json:"burden_m"`
	ChargePerHoleKg  float64     `json:"charge_per_hole_kg"`
	HoleCount        int         `json:"hole_count"`
	TotalChargeKg    float64     `json:"total_charge_kg"`
	PowderFactorKgM3 float64     `json:"powder_factor_kg_m3"`
	X50MM            float64     `json:"x50_mm"`
	UniformityIndex  float64     `json:"uniformity_index"`
	Grid             []GridPoint `json:"grid"`
}

// Calculate resolves the catalog selections, validates the numeric domain and
// runs the evaluation pipeline. The result is a pure function of the input
// and the catalogs.
func Calculate(in Input) (Result, error) {
	explosive, err := tables.ExplosiveByName(in.Explosive)
	if err != nil {
		return Result{}, err
	}
	rock, err := tables.RockMassByName(in.RockMass)
	if err != nil {
		return Result{}, err
	}
	pattern, err := tables.PatternByName(in.Pattern)
	if err != nil {
		return Result{}, err
	}

	applyDefaults(&in)
	if err := validate(in); err != nil {
		return Result{}, err
	}
	return Evaluate(in, explosive, rock, pattern)
}

// Evaluate runs the fixed pipeline against already-resolved catalog records.
// Stages feed forward only; every valid input yields a complete result.
func Evaluate(in Input, explosive tables.Explosive, rock tables.RockMass, pattern tables.Pattern) (Result, error) {
	inclinationRad := in.InclinationDeg * math.Pi / 180
	holeLengthM := (in.BenchHeightM + in.SubdrillM) / math.Cos(inclinationRad)

	spacingM := formula.Spacing(in.BenchHeightM, pattern.BurdenM)
	chargeKg := formula.ChargeMass(explosive.DensityGCm3, in.DiameterMM, holeLengthM)

	holeCount := in.HolesPerRow * in.Rows
	totalKg := chargeKg * float64(holeCount)

	volumeM3 := spacingM * pattern.BurdenM * in.BenchHeightM
	if volumeM3 <= 0 {
		return Result{}, &ComputationError{Reason: "degenerate geometry"}
	}
	powderFactor := chargeKg / volumeM3

	x50MM := formula.MeanFragmentSize(rock.A, powderFactor, chargeKg) * 10
	// Charge length is taken as the full hole length, consistent with
	// ChargeMass charging the whole column.
	n := formula.UniformityIndex(pattern.BurdenM, spacingM, in.DiameterMM, in.DeviationM, holeLengthM, in.BenchHeightM)

	return Result{
		HoleLengthM:      holeLengthM,
		SpacingM:         spacingM,
		BurdenM:          pattern.BurdenM,
		ChargePerHoleKg:  chargeKg,
		HoleCount:        holeCount,
		TotalChargeKg:    totalKg,
		PowderFactorKgM3: powderFactor,
		X50MM:            x50MM,
		UniformityIndex:  n,
		Grid:             grid(in.HolesPerRow, in.Rows, spacingM, pattern.BurdenM),
	}, nil
}

func applyDefaults(in *Input) {
	if in.DiameterMM == 0 {
		in.DiameterMM = DefaultDiameterMM
	}
	if in.SubdrillM == 0 {
		in.SubdrillM = DefaultSubdrillM
	}
	if in.InclinationDeg == 0 {
		in.InclinationDeg = DefaultInclinationDeg
	}
	if in.DeviationM == 0 {
		in.DeviationM = DefaultDeviationM
	}
}

func validate(in Input) error {
	switch {
	case in.BenchHeightM < MinBenchHeightM || in.BenchHeightM > MaxBenchHeightM:
		return &ValidationError{Field: "bench_height_m", Reason: fmt.Sprintf("must be between %.0f and %.0f m", MinBenchHeightM, MaxBenchHeightM)}
	case in.DiameterMM <= 0:
		return &ValidationError{Field: "diameter_mm", Reason: "must be positive"}
	case in.SubdrillM < 0:
		return &ValidationError{Field: "subdrill_m", Reason: "must not be negative"}
	case in.InclinationDeg < 0 || in.InclinationDeg >= 90:
		return &ValidationError{Field: "inclination_deg", Reason: "must be between 0 and 90 degrees"}
	case in.DeviationM < 0:
		return &ValidationError{Field: "deviation_m", Reason: "must not be negative"}
	case in.HolesPerRow < 1:
		return &ValidationError{Field: "holes_per_row", Reason: "must be at least 1"}
	case in.Rows < 1:
		return &ValidationError{Field: "rows", Reason: "must be at least 1"}
	}
	return nil
}

// grid lays the collars out row-major: hole j of row i sits at (j·S, i·B).
// Rectangular pattern only, no stagger.
func grid(holesPerRow, rows int, spacingM, burdenM float64) []GridPoint {
	points := make([]GridPoint, 0, holesPerRow*rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < holesPerRow; j++ {
			points = append(points, GridPoint{XM: float64(j) * spacingM, YM: float64(i) * burdenM})
		}
	}
	return points
}

// SummaryLines formats the readouts the way the report prints them.
func (r Result) SummaryLines() []string {
	return []string{
		fmt.Sprintf("Comprimento real do furo: %.2f m", r.HoleLengthM),
		fmt.Sprintf("Carga por furo estimada: %.2f kg", r.ChargePerHoleKg),
		fmt.Sprintf("Espaçamento calculado: %.2f m", r.SpacingM),
		fmt.Sprintf("Quantidade total de furos: %d", r.HoleCount),
		fmt.Sprintf("Massa total de explosivo: %.1f kg", r.TotalChargeKg),
		fmt.Sprintf("Razão de carga (K): %.2f kg/m³", r.PowderFactorKgM3),
		fmt.Sprintf("Tamanho médio estimado dos fragmentos (X50): %.1f mm", r.X50MM),
	}
}
