package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/rest"
)

type ExportHandler struct {
	service ExportService
}

func NewExportHandler(service ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// List returns the names of the exportable tables.
func (h *ExportHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Tables()); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Download streams one table as a CSV attachment.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]

	data, err := h.service.Render(r.Context(), table)
	if err != nil {
		if errors.Is(err, ErrUnknownTable) {
			writeError(w, http.StatusNotFound, "Unknown table", table)
			return
		}
		log.Errorf("Error exporting table %s: %v", table, err)
		http.Error(w, "Failed to export table", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table+".csv"))
	if _, err := w.Write(data); err != nil {
		log.Errorf("Error writing export response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message, Details: details}); err != nil {
		log.Errorf("Error encoding error response: %v", err)
	}
}
