package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpacing(t *testing.T) {
	assert.InDelta(t, 5.29, Spacing(10, 6.5), 1e-9)
	assert.InDelta(t, 3.68, Spacing(10, 3), 1e-9)
}

func TestChargeMass(t *testing.T) {
	// ANFO in a 76.2 mm hole: area = pi/4 * 7.62^2 = 45.60 cm²,
	// 41.04 g/cm over 1068 cm of column.
	assert.InDelta(t, 43.83, ChargeMass(0.90, 76.2, 10.68), 0.05)
}

func TestMeanFragmentSize(t *testing.T) {
	x50 := MeanFragmentSize(10, 0.131, 45.0)
	assert.Greater(t, x50, 0.0)

	// A scales the result linearly.
	assert.InDelta(t, 1.2*x50, MeanFragmentSize(12, 0.131, 45.0), 1e-9)

	// A higher powder factor breaks the rock finer.
	assert.Less(t, MeanFragmentSize(10, 0.41, 45.0), x50)
}

// The reference model keeps the diameter in mm against burden, spacing and
// height in m. This value pins that behavior; a unit "fix" changes it.
func TestUniformityIndex_ReferenceValues(t *testing.T) {
	n := UniformityIndex(6.5, 5.29, 76.2, 0.1, 10.97393, 10)
	assert.InDelta(t, 1.28904, n, 1e-3)
}

func TestPercentPassing(t *testing.T) {
	t.Run("X50 is the 50%-passing size for any positive n", func(t *testing.T) {
		for _, n := range []float64{0.5, 1.0, 1.3, 2.0, 3.5} {
			assert.InDelta(t, 100*(1-math.Exp(-0.693)), PercentPassing(250, 250, n), 1e-9)
			assert.InDelta(t, 50.0, PercentPassing(250, 250, n), 0.05)
		}
	})

	t.Run("zero opening passes nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, PercentPassing(0, 250, 1.3))
	})

	t.Run("monotonically non-decreasing in the opening", func(t *testing.T) {
		prev := 0.0
		for x := 1.0; x <= 10000; x *= 1.1 {
			p := PercentPassing(x, 250, 1.3)
			assert.GreaterOrEqual(t, p, prev)
			assert.LessOrEqual(t, p, 100.0)
			prev = p
		}
	})
}
