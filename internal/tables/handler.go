package tables

import (
	"encoding/json"
	"net/http"
)

type Catalogs struct {
	Explosives []Explosive `json:"explosives"`
	RockMasses []RockMass  `json:"rock_masses"`
	Patterns   []Pattern   `json:"patterns"`
}

type Handler struct{}

// List serves the catalogs so the front-end selects don't duplicate the data.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Catalogs{
		Explosives: Explosives,
		RockMasses: RockMasses,
		Patterns:   Patterns,
	})
}
