package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type GoalDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TargetAmount string  `json:"targetAmount"`
	TargetDate   string  `json:"targetDate,omitempty"`
	CurrentSaved string  `json:"currentSaved"`
	Progress     float64 `json:"progress"`
}

type GoalHandler struct {
	goalService GoalService
}

func NewGoalHandler(goalService GoalService) *GoalHandler {
	return &GoalHandler{goalService}
}

func (handler *GoalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	goals, err := handler.goalService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GoalDTO, 0, len(goals))
	for _, goal := range goals {
		dtos = append(dtos, GoalToDTO(goal))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	goal, err := DTOToGoal(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.goalService.Create(r.Context(), goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(GoalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["goalId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	if dto.ID != id {
		http.Error(w, "Invalid goal id in request body", http.StatusBadRequest)
		return
	}

	goal, err := DTOToGoal(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.goalService.Update(r.Context(), goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GoalToDTO(goal)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["goalId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.goalService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func GoalToDTO(goal Goal) GoalDTO {
	return GoalDTO{
		ID:           goal.ID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount.String(),
		TargetDate:   goal.TargetDate,
		CurrentSaved: goal.CurrentSaved.String(),
		Progress:     goal.Progress().InexactFloat64(),
	}
}

func DTOToGoal(dto GoalDTO) (Goal, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Goal{}, errors.New("name must not be empty")
	}
	target, err := decimal.NewFromString(strings.TrimSpace(dto.TargetAmount))
	if err != nil {
		return Goal{}, errors.New("targetAmount must be a decimal number")
	}
	saved := decimal.Zero
	if strings.TrimSpace(dto.CurrentSaved) != "" {
		saved, err = decimal.NewFromString(strings.TrimSpace(dto.CurrentSaved))
		if err != nil {
			return Goal{}, errors.New("currentSaved must be a decimal number")
		}
	}
	if dto.TargetDate != "" {
		if _, ok := utils.ParseDate(dto.TargetDate); !ok {
			return Goal{}, errors.New("targetDate must be in YYYY-MM-DD format")
		}
	}
	return Goal{
		ID:           dto.ID,
		Name:         dto.Name,
		TargetAmount: target,
		TargetDate:   dto.TargetDate,
		CurrentSaved: saved,
	}, nil
}
