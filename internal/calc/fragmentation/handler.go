package fragmentation

import (
	"encoding/json"
	"errors"
	"net/http"

	blastplan "Fogo/internal/calc/blastplan"
)

type Result struct {
	Curves []Curve `json:"curves"`
}

type Handler struct{}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input blastplan.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	curves, err := Sweep(input)
	if err != nil {
		var compErr *blastplan.ComputationError
		if errors.As(err, &compErr) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{Curves: curves})
}
