package card

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mnurse06/finance-tracker/internal/rest"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type CardDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Limit   string `json:"limit"`
	Balance string `json:"balance"`
}

type PaymentDTO struct {
	Amount string `json:"amount"`
	Date   string `json:"date,omitempty"`
	Note   string `json:"note,omitempty"`
}

type CardHandler struct {
	cardService CardService
}

func NewCardHandler(cardService CardService) *CardHandler {
	return &CardHandler{cardService}
}

func (handler *CardHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cards, err := handler.cardService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CardDTO, 0, len(cards))
	for _, card := range cards {
		dtos = append(dtos, CardToDTO(card))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new card")
	w.Header().Set("Content-Type", "application/json")

	var dto CardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	card, err := DTOToCard(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.cardService.Create(r.Context(), card)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(CardToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["cardId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto CardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	if dto.ID != id {
		http.Error(w, "Invalid card id in request body", http.StatusBadRequest)
		return
	}

	card, err := DTOToCard(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.cardService.Update(r.Context(), card)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CardToDTO(card)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["cardId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.cardService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Pay applies a payment to the card. Amounts outside [0, balance] are
// rejected as unprocessable.
func (handler *CardHandler) Pay(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["cardId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto PaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(dto.Amount))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid payment",
			Details: "amount must be a decimal number",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	// The amount is bounded to [0, current balance] here, at the input
	// boundary. The service clamps the balance at zero regardless.
	cards, err := handler.cardService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var target *Card
	for i := range cards {
		if cards[i].ID == id {
			target = &cards[i]
			break
		}
	}
	if target == nil {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}
	if amount.IsNegative() || amount.GreaterThan(target.Balance) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid payment",
			Details: "amount must be between 0 and the card balance",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	card, err := handler.cardService.ApplyPayment(r.Context(), id, Payment{
		Amount: amount,
		Date:   dto.Date,
		Note:   dto.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCardNotFound):
			http.Error(w, "Card not found", http.StatusNotFound)
		case errors.Is(err, ErrNegativePayment):
			w.WriteHeader(http.StatusUnprocessableEntity)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid payment",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
		case errors.Is(err, ErrInvalidPaymentDay):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CardToDTO(card)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func CardToDTO(card Card) CardDTO {
	return CardDTO{
		ID:      card.ID,
		Name:    card.Name,
		Limit:   card.Limit.String(),
		Balance: card.Balance.String(),
	}
}

func DTOToCard(dto CardDTO) (Card, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return Card{}, errors.New("name must not be empty")
	}
	limit, err := decimal.NewFromString(strings.TrimSpace(dto.Limit))
	if err != nil {
		return Card{}, errors.New("limit must be a decimal number")
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(dto.Balance))
	if err != nil {
		return Card{}, errors.New("balance must be a decimal number")
	}
	return Card{
		ID:      dto.ID,
		Name:    dto.Name,
		Limit:   limit,
		Balance: balance,
	}, nil
}
