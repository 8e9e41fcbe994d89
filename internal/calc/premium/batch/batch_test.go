package batch

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	blastplan "Fogo/internal/calc/blastplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planItem(explosive string) blastplan.Input {
	return blastplan.Input{
		Explosive:    explosive,
		RockMass:     "Rocha branda e pouco fraturada",
		Pattern:      "Fechada",
		BenchHeightM: 8,
		HolesPerRow:  4,
		Rows:         3,
	}
}

func TestCalculate(t *testing.T) {
	t.Run("evaluates every item in order", func(t *testing.T) {
		res, err := Calculate(Input{Items: []blastplan.Input{
			planItem("ANFO"),
			planItem("Dinamite gelatina"),
		}})
		require.NoError(t, err)
		require.Len(t, res.Results, 2)
		// denser explosive, heavier charge, same geometry
		assert.Greater(t, res.Results[1].ChargePerHoleKg, res.Results[0].ChargePerHoleKg)
		assert.Equal(t, res.Results[0].SpacingM, res.Results[1].SpacingM)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := Calculate(Input{})
		assert.ErrorContains(t, err, "no items")
	})

	t.Run("one bad item fails the batch", func(t *testing.T) {
		_, err := Calculate(Input{Items: []blastplan.Input{
			planItem("ANFO"),
			planItem("Nitroglicerina pura"),
		}})
		require.Error(t, err)
		assert.ErrorContains(t, err, "item 1")
	})
}

func TestHandlerCalc(t *testing.T) {
	body, err := json.Marshal(Input{Items: []blastplan.Input{planItem("ANFO")}})
	require.NoError(t, err)

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest("POST", "/tools/blastplan/batch", bytes.NewReader(body)))

	require.Equal(t, 200, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Len(t, res.Results, 1)
}
