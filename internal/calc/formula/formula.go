// Package formula implements the empirical blast-design equations: drill
// spacing, cylindrical charge mass, Kuz-Ram mean fragment size and uniformity
// index, and the Rosin-Rammler passing fraction. All functions are pure;
// callers are responsible for keeping inputs inside the physical domain.
package formula

import "math"

// Spacing returns the hole spacing S in meters for a bench height and burden
// in meters. Empirical linear fit: S = 0.23 (H + 2B).
func Spacing(benchHeightM, burdenM float64) float64 {
	return 0.23 * (benchHeightM + 2*burdenM)
}

// ChargeMass returns the explosive mass per hole in kg assuming the full hole
// length is charged (no stemming deduction). Density in g/cm³, diameter in mm,
// hole length in m.
func ChargeMass(densityGCm3, diameterMM, holeLengthM float64) float64 {
	diameterCM := diameterMM / 10
	areaCM2 := math.Pi / 4 * diameterCM * diameterCM
	linearGCm := areaCM2 * densityGCm3 // g per cm of column
	lengthCM := holeLengthM * 100
	return linearGCm * lengthCM / 1000
}

// MeanFragmentSize returns the Kuz-Ram X50 in cm: X50 = A K^-0.8 Qe^(1/6),
// with A the rock factor, K the powder factor in kg/m³ and Qe the charge per
// hole in kg. K and Qe must be positive.
func MeanFragmentSize(a, powderFactor, chargeKg float64) float64 {
	return a * math.Pow(powderFactor, -0.8) * math.Pow(chargeKg, 1.0/6.0)
}

// UniformityIndex returns the Rosin-Rammler shape parameter n.
//
// The reference model mixes units on purpose: diameter is in mm while burden,
// spacing, deviation, charge length and bench height are in m. The published
// curves depend on that mix, so it is kept as-is here; normalizing the units
// would change every result.
func UniformityIndex(burdenM, spacingM, diameterMM, deviationM, chargeLengthM, benchHeightM float64) float64 {
	return (2.2 - 14*(burdenM/diameterMM)) *
		math.Sqrt(1+(spacingM/burdenM)/2) *
		((1 - deviationM/burdenM) * (chargeLengthM / benchHeightM))
}

// PercentPassing returns the Rosin-Rammler cumulative passing percentage at a
// sieve opening, both sizes in mm. X50 is the 50%-passing size by definition:
// at x = X50 the result is 100(1 - e^-0.693) ≈ 50 for any positive n.
func PercentPassing(sieveMM, x50MM, n float64) float64 {
	if sieveMM <= 0 {
		return 0
	}
	retained := math.Exp(-0.693 * math.Pow(sieveMM/x50MM, n))
	return 100 * (1 - retained)
}
