package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	service BudgetService
}

func NewBudgetHandler(service BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

type BudgetDTO struct {
	Category      string `json:"category"`
	MonthlyBudget string `json:"monthlyBudget"`
}

func (h *BudgetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch budgets", http.StatusInternalServerError)
		return
	}
	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, b := range budgets {
		dtos = append(dtos, BudgetToDTO(b))
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Category != "" && dto.Category != category {
		http.Error(w, "Category mismatch between path and body", http.StatusBadRequest)
		return
	}
	amount, err := decimal.NewFromString(dto.MonthlyBudget)
	if err != nil {
		http.Error(w, "Invalid monthly budget amount", http.StatusBadRequest)
		return
	}
	saved, err := h.service.Set(r.Context(), Budget{Category: category, MonthlyBudget: amount})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrNegativeBudget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to store budget", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BudgetToDTO(saved)); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	found, err := h.service.Delete(r.Context(), category)
	if err != nil {
		http.Error(w, "Failed to delete budget", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BudgetToDTO(b Budget) BudgetDTO {
	return BudgetDTO{
		Category:      b.Category,
		MonthlyBudget: b.MonthlyBudget.String(),
	}
}
