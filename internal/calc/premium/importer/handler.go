// Package importer evaluates blast plans from an uploaded spreadsheet, one
// plan per row.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	blastplan "Fogo/internal/calc/blastplan"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Results []blastplan.Result `json:"results"`
}

func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []blastplan.Result
	for i := 1; i < len(rows); i++ {
		input, err := parsePlanRow(rows[i])
		if err != nil {
			continue
		}
		res, err := blastplan.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// parsePlanRow reads: explosive, rock mass, pattern, bench height (m),
// holes per row, rows, then optionally diameter (mm) and subdrill (m).
func parsePlanRow(row []string) (blastplan.Input, error) {
	if len(row) < 6 {
		return blastplan.Input{}, fmt.Errorf("bad row")
	}
	height, err := toFloat(row[3])
	if err != nil {
		return blastplan.Input{}, err
	}
	holesPerRow, err := toFloat(row[4])
	if err != nil {
		return blastplan.Input{}, err
	}
	lines, err := toFloat(row[5])
	if err != nil {
		return blastplan.Input{}, err
	}
	diameter := 0.0
	if len(row) > 6 && row[6] != "" {
		diameter, _ = toFloat(row[6])
	}
	subdrill := 0.0
	if len(row) > 7 && row[7] != "" {
		subdrill, _ = toFloat(row[7])
	}
	return blastplan.Input{
		Explosive:    row[0],
		RockMass:     row[1],
		Pattern:      row[2],
		BenchHeightM: height,
		HolesPerRow:  int(holesPerRow),
		Rows:         int(lines),
		DiameterMM:   diameter,
		SubdrillM:    subdrill,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
