package fragmentation

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	blastplan "Fogo/internal/calc/blastplan"
	tables "Fogo/internal/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepInput() blastplan.Input {
	return blastplan.Input{
		Explosive:    "ANFO",
		RockMass:     "Rocha dura e altamente fraturada",
		Pattern:      "Aberta",
		BenchHeightM: 10,
		HolesPerRow:  5,
		Rows:         4,
	}
}

func TestSweep_OneCurvePerPatternInCatalogOrder(t *testing.T) {
	curves, err := Sweep(sweepInput())
	require.NoError(t, err)

	require.Len(t, curves, len(tables.Patterns))
	for i, pattern := range tables.Patterns {
		assert.Equal(t, pattern.Name, curves[i].Pattern)
		assert.Equal(t, "Malha "+pattern.Name, curves[i].Label)
	}
}

func TestSweep_SieveOpenings(t *testing.T) {
	curves, err := Sweep(sweepInput())
	require.NoError(t, err)

	for _, curve := range curves {
		require.Len(t, curve.Points, CurvePoints)
		assert.InDelta(t, 1.0, curve.Points[0].SieveMM, 1e-9)
		assert.InDelta(t, 10000.0, curve.Points[CurvePoints-1].SieveMM, 1e-6)

		// log-spaced: constant ratio between consecutive openings
		ratio := curve.Points[1].SieveMM / curve.Points[0].SieveMM
		for i := 1; i < CurvePoints-1; i++ {
			assert.InDelta(t, ratio, curve.Points[i+1].SieveMM/curve.Points[i].SieveMM, 1e-9)
		}
	}
}

func TestSweep_CurvesAreDistributions(t *testing.T) {
	curves, err := Sweep(sweepInput())
	require.NoError(t, err)

	for _, curve := range curves {
		prev := -1.0
		for _, p := range curve.Points {
			assert.GreaterOrEqual(t, p.PercentPassing, prev)
			assert.GreaterOrEqual(t, p.PercentPassing, 0.0)
			assert.LessOrEqual(t, p.PercentPassing, 100.0)
			prev = p.PercentPassing
		}
	}
}

// Charge per hole and uniformity index come from the primary evaluation and
// stay fixed; only the powder factor, and with it X50, shifts per pattern.
func TestSweep_OnlyScaleParameterVaries(t *testing.T) {
	in := sweepInput()
	curves, err := Sweep(in)
	require.NoError(t, err)
	base, err := blastplan.Calculate(in)
	require.NoError(t, err)

	aberta, fechada := curves[0], curves[1]
	assert.InDelta(t, base.X50MM, aberta.X50MM, 1e-9)
	// The closed pattern packs the holes tighter, raising K and cutting X50.
	assert.Less(t, fechada.X50MM, aberta.X50MM)

	// Both curves cross 50% at their own X50.
	for _, curve := range curves {
		interp := interpolateAt(curve, curve.X50MM)
		assert.InDelta(t, 50.0, interp, 0.5)
	}
}

func interpolateAt(curve Curve, sieveMM float64) float64 {
	pts := curve.Points
	for i := 0; i < len(pts)-1; i++ {
		if pts[i].SieveMM <= sieveMM && sieveMM <= pts[i+1].SieveMM {
			frac := (sieveMM - pts[i].SieveMM) / (pts[i+1].SieveMM - pts[i].SieveMM)
			return pts[i].PercentPassing + frac*(pts[i+1].PercentPassing-pts[i].PercentPassing)
		}
	}
	return -1
}

func TestSweep_PropagatesInputErrors(t *testing.T) {
	in := sweepInput()
	in.Explosive = "Pólvora"
	_, err := Sweep(in)
	assert.ErrorContains(t, err, "unknown explosive")
}

func TestSweepHandler(t *testing.T) {
	body, err := json.Marshal(sweepInput())
	require.NoError(t, err)

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Sweep(rec, httptest.NewRequest("POST", "/tools/blastplan/sweep", bytes.NewReader(body)))

	require.Equal(t, 200, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Curves, 2)
	assert.Equal(t, "Malha Aberta", res.Curves[0].Label)
	assert.Len(t, res.Curves[0].Points, CurvePoints)
}
