package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	errEmptyName         = errors.New("name must not be empty")
	errInvalidAmount     = errors.New("amount must be a decimal number")
	errInvalidChargeDate = errors.New("nextChargeDate must be in YYYY-MM-DD format")
	errInvalidCadence    = errors.New("cadence is not supported")
	errInvalidCategory   = errors.New("category is not one of the known categories")
	errInvalidYear       = errors.New("year must be a number")
	errInvalidMonth      = errors.New("month must be a number between 1 and 12")
)

type SubscriptionDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Amount         string `json:"amount"`
	Cadence        string `json:"cadence"`
	NextChargeDate string `json:"nextChargeDate"`
	Category       string `json:"category"`
}

type SubscriptionHandler struct {
	subscriptionService SubscriptionService
	clock               utils.Clock
}

func NewSubscriptionHandler(subscriptionService SubscriptionService, clock utils.Clock) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService, clock}
}

func (handler *SubscriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	subscriptions, err := handler.subscriptionService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SubscriptionDTO, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		dtos = append(dtos, SubscriptionToDTO(subscription))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Upcoming lists subscriptions charging in the requested month, defaulting
// to the current one.
func (handler *SubscriptionHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, month, err := monthFromQuery(r, handler.clock)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	subscriptions, err := handler.subscriptionService.UpcomingInMonth(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SubscriptionDTO, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		dtos = append(dtos, SubscriptionToDTO(subscription))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new subscription")
	w.Header().Set("Content-Type", "application/json")

	var dto SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	subscription, err := DTOToSubscription(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.subscriptionService.Create(r.Context(), subscription)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SubscriptionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["subscriptionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	if dto.ID != id {
		http.Error(w, "Invalid subscription id in request body", http.StatusBadRequest)
		return
	}

	subscription, err := DTOToSubscription(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.subscriptionService.Update(r.Context(), subscription)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SubscriptionToDTO(subscription)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["subscriptionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.subscriptionService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func SubscriptionToDTO(subscription Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:             subscription.ID,
		Name:           subscription.Name,
		Amount:         subscription.Amount.String(),
		Cadence:        subscription.Cadence,
		NextChargeDate: subscription.NextChargeDate,
		Category:       subscription.Category,
	}
}

func DTOToSubscription(dto SubscriptionDTO) (Subscription, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Subscription{}, errEmptyName
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(dto.Amount))
	if err != nil {
		return Subscription{}, errInvalidAmount
	}
	if _, ok := utils.ParseDate(dto.NextChargeDate); !ok {
		return Subscription{}, errInvalidChargeDate
	}
	cadence := dto.Cadence
	if cadence == "" {
		cadence = CadenceMonthly
	}
	if !ValidCadence(cadence) {
		return Subscription{}, errInvalidCadence
	}
	if !ValidCategory(dto.Category) {
		return Subscription{}, errInvalidCategory
	}
	return Subscription{
		ID:             dto.ID,
		Name:           dto.Name,
		Amount:         amount,
		Cadence:        cadence,
		NextChargeDate: dto.NextChargeDate,
		Category:       dto.Category,
	}, nil
}

// monthFromQuery reads optional year and month parameters, defaulting to
// the current month.
func monthFromQuery(r *http.Request, clock utils.Clock) (int, time.Month, error) {
	now := clock.Now()
	year, month := now.Year(), now.Month()

	if value := r.URL.Query().Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, errInvalidYear
		}
		year = parsed
	}
	if value := r.URL.Query().Get("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}
