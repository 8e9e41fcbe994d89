// Package fragmentation compares the predicted size distribution across every
// drill-pattern class, holding the rest of the blast design fixed.
package fragmentation

import (
	"math"

	blastplan "Fogo/internal/calc/blastplan"
	formula "Fogo/internal/calc/formula"
	tables "Fogo/internal/tables"
)

// CurvePoints is the number of sieve openings per curve, log-spaced over
// [MinSieveMM, MaxSieveMM].
const (
	CurvePoints = 100
	MinSieveMM  = 1.0
	MaxSieveMM  = 10000.0
)

type Point struct {
	SieveMM        float64 `json:"sieve_mm"`
	PercentPassing float64 `json:"percent_passing"`
}

type Curve struct {
	Pattern string  `json:"pattern"`
	Label   string  `json:"label"`
	X50MM   float64 `json:"x50_mm"`
	Points  []Point `json:"points"`
}

// Sweep evaluates the plan once, then re-derives spacing, rock volume and
// powder factor for every pattern class in catalog order and produces one
// Rosin-Rammler curve per class.
//
// The charge per hole and the uniformity index are taken from the primary
// evaluation and held fixed across the sweep: in the reference model the
// charge is a property of the hole and explosive, and only the scale
// parameter X50 responds to the pattern. The sweep varies K per class.
func Sweep(in blastplan.Input) ([]Curve, error) {
	base, err := blastplan.Calculate(in)
	if err != nil {
		return nil, err
	}
	rock, err := tables.RockMassByName(in.RockMass)
	if err != nil {
		return nil, err
	}

	sieves := sieveOpenings()
	curves := make([]Curve, 0, len(tables.Patterns))
	for _, pattern := range tables.Patterns {
		spacingM := formula.Spacing(in.BenchHeightM, pattern.BurdenM)
		volumeM3 := spacingM * pattern.BurdenM * in.BenchHeightM
		if volumeM3 <= 0 {
			return nil, &blastplan.ComputationError{Reason: "degenerate geometry"}
		}
		powderFactor := base.ChargePerHoleKg / volumeM3
		x50MM := formula.MeanFragmentSize(rock.A, powderFactor, base.ChargePerHoleKg) * 10

		points := make([]Point, len(sieves))
		for i, sieve := range sieves {
			points[i] = Point{
				SieveMM:        sieve,
				PercentPassing: formula.PercentPassing(sieve, x50MM, base.UniformityIndex),
			}
		}
		curves = append(curves, Curve{
			Pattern: pattern.Name,
			Label:   "Malha " + pattern.Name,
			X50MM:   x50MM,
			Points:  points,
		})
	}
	return curves, nil
}

func sieveOpenings() []float64 {
	decades := math.Log10(MaxSieveMM / MinSieveMM)
	out := make([]float64, CurvePoints)
	for i := range out {
		out[i] = MinSieveMM * math.Pow(10, decades*float64(i)/float64(CurvePoints-1))
	}
	return out
}
