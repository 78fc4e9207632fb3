package card

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrNegativePayment   = errors.New("payment amount must not be negative")
	ErrInvalidPaymentDay = errors.New("payment date must be in YYYY-MM-DD format")
)

type CardService interface {
	GetAll(ctx context.Context) ([]Card, error)
	Create(ctx context.Context, card Card) (Card, error)
	Update(ctx context.Context, card Card) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// ApplyPayment reduces the card balance and records the payment as a
	// Bills transaction tagged with the card payment marker. A payment
	// larger than the balance clamps the balance to zero; bounding the
	// amount to [0, balance] is the input boundary's concern.
	ApplyPayment(ctx context.Context, id int, payment Payment) (Card, error)
}

// Payment describes a single card payment. Date is optional and defaults
// to today; Note is free text appended after the generated prefix.
type Payment struct {
	Amount decimal.Decimal
	Date   string
	Note   string
}

type CardServiceImpl struct {
	repo  CardRepo
	txs   transaction.TransactionService
	clock utils.Clock
}

func NewCardService(repo CardRepo, txs transaction.TransactionService, clock utils.Clock) *CardServiceImpl {
	return &CardServiceImpl{repo: repo, txs: txs, clock: clock}
}

func (s *CardServiceImpl) GetAll(ctx context.Context) ([]Card, error) {
	return s.repo.GetAll(ctx)
}

func (s *CardServiceImpl) Create(ctx context.Context, card Card) (Card, error) {
	id, err := s.repo.Store(ctx, card)
	if err != nil {
		return Card{}, err
	}
	card.ID = id
	return card, nil
}

func (s *CardServiceImpl) Update(ctx context.Context, card Card) (bool, error) {
	return s.repo.Update(ctx, card)
}

func (s *CardServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *CardServiceImpl) ApplyPayment(ctx context.Context, id int, payment Payment) (Card, error) {
	if payment.Amount.IsNegative() {
		return Card{}, ErrNegativePayment
	}

	cards, err := s.repo.GetAll(ctx)
	if err != nil {
		return Card{}, err
	}
	var paid *Card
	for i := range cards {
		if cards[i].ID == id {
			paid = &cards[i]
			break
		}
	}
	if paid == nil {
		return Card{}, ErrCardNotFound
	}

	// The tag period follows the payment date, not the wall clock, so a
	// back-dated payment is marked for the month it belongs to.
	payDate := s.clock.Now()
	if payment.Date != "" {
		parsed, ok := utils.ParseDate(payment.Date)
		if !ok {
			return Card{}, ErrInvalidPaymentDay
		}
		payDate = parsed
	}
	date := utils.FormatDate(payDate)

	// The balance never drops below zero, independent of input validation.
	newBalance := paid.Balance.Sub(payment.Amount)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	paid.Balance = newBalance

	updated, err := s.repo.Update(ctx, *paid)
	if err != nil {
		return Card{}, err
	}
	if !updated {
		return Card{}, ErrCardNotFound
	}

	tag := transaction.NewCardPaymentTag(paid.Name, payDate.Year(), payDate.Month())
	note := strings.TrimSpace(fmt.Sprintf("CC Payment - %s %s %s", paid.Name, tag, payment.Note))

	_, err = s.txs.Create(ctx, transaction.Transaction{
		Date:     date,
		Amount:   payment.Amount.Abs().Neg(),
		Category: transaction.CategoryBills,
		Note:     note,
	})
	if err != nil {
		// The balance is already persisted at this point; the ledger entry
		// is the part that failed.
		log.Errorf("card %d balance updated but payment transaction failed: %v", id, err)
		return Card{}, fmt.Errorf("could not record payment transaction: %w", err)
	}

	return *paid, nil
}
