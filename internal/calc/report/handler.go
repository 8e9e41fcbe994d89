package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	doc, err := Generate(input, time.Now())
	if err != nil {
		var exportErr *ExportError
		if errors.As(err, &exportErr) {
			http.Error(w, "Report generation error", http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"relatorio_plano_fogo.pdf\"")
	w.Write(doc)
}
