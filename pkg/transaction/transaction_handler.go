package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mnurse06/finance-tracker/internal/rest"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	errInvalidAmount   = errors.New("amount must be a decimal number")
	errInvalidCategory = errors.New("category is not one of the known categories")
)

type TransactionDTO struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

type TransactionHandler struct {
	transactionService TransactionService
}

func NewTransactionHandler(transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService}
}

func (handler *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	transactions, err := handler.transactionService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		dtos = append(dtos, TransactionToDTO(transaction))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	transaction, err := DTOToTransaction(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid transaction",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	created, err := handler.transactionService.Create(r.Context(), transaction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["transactionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	if dto.ID != id {
		http.Error(w, "Invalid transaction id in request body", http.StatusBadRequest)
		return
	}

	transaction, err := DTOToTransaction(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid transaction",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	ok, err := handler.transactionService.Update(r.Context(), transaction)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(transaction)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["transactionId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.transactionService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func TransactionToDTO(transaction Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       transaction.ID,
		Date:     transaction.Date,
		Amount:   transaction.Amount.String(),
		Category: transaction.Category,
		Note:     transaction.Note,
	}
}

// DTOToTransaction validates and converts an incoming DTO. The API is
// stricter than the store: it rejects what a loaded file would merely
// treat as zero or non-matching.
func DTOToTransaction(dto TransactionDTO) (Transaction, error) {
	if _, ok := utils.ParseDate(dto.Date); !ok {
		return Transaction{}, errInvalidDate
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(dto.Amount))
	if err != nil {
		return Transaction{}, errInvalidAmount
	}
	if !ValidCategory(dto.Category) {
		return Transaction{}, errInvalidCategory
	}
	return Transaction{
		ID:       dto.ID,
		Date:     dto.Date,
		Amount:   amount,
		Category: dto.Category,
		Note:     dto.Note,
	}, nil
}
