package card

import (
	"context"
	"testing"
	"time"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var clock = &utils.MockClock{FixedNow: time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)}

func setup() (CardService, transaction.TransactionService) {
	store := tablestore.NewMemoryStore()
	txService := transaction.NewTransactionService(transaction.NewTransactionRepo(store))
	cardService := NewCardService(NewCardRepo(store), txService, clock)
	return cardService, txService
}

func TestCardUtilization(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		balance string
		want    string
	}{
		{name: "regular utilization", limit: "1000", balance: "250", want: "0.25"},
		{name: "full utilization", limit: "1000", balance: "1000", want: "1"},
		{name: "zero limit", limit: "0", balance: "250", want: "0"},
		{name: "negative limit", limit: "-100", balance: "250", want: "0"},
		{name: "zero balance", limit: "1000", balance: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := Card{
				Limit:   decimal.RequireFromString(tt.limit),
				Balance: decimal.RequireFromString(tt.balance),
			}
			assert.True(t, card.Utilization().Equal(decimal.RequireFromString(tt.want)),
				"got %s", card.Utilization())
		})
	}
}

func TestCardService_ApplyPayment(t *testing.T) {
	t.Run("should reduce the balance and record a Bills transaction", func(t *testing.T) {
		// given
		cardService, txService := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(400)})
		require.NoError(t, err)

		// when
		paid, err := cardService.ApplyPayment(ctx, created.ID, Payment{
			Amount: decimal.NewFromInt(150),
			Date:   "2025-07-14",
			Note:   "july payment",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "250", paid.Balance.String())

		transactions, err := txService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "-150", transactions[0].Amount.String())
		assert.Equal(t, "Bills", transactions[0].Category)
		assert.Equal(t, "2025-07-14", transactions[0].Date)
		assert.Equal(t, "CC Payment - Blue Card [ccpay:Blue Card:2025-07] july payment", transactions[0].Note)
	})

	t.Run("should trim the note when no free text is given", func(t *testing.T) {
		// given
		cardService, txService := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(400)})
		require.NoError(t, err)

		// when
		_, err = cardService.ApplyPayment(ctx, created.ID, Payment{Amount: decimal.NewFromInt(10)})

		// then
		require.NoError(t, err)
		transactions, err := txService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "CC Payment - Blue Card [ccpay:Blue Card:2025-07]", transactions[0].Note)
	})

	t.Run("should default the transaction date to today", func(t *testing.T) {
		// given
		cardService, txService := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(400)})
		require.NoError(t, err)

		// when
		_, err = cardService.ApplyPayment(ctx, created.ID, Payment{Amount: decimal.NewFromInt(10)})

		// then
		require.NoError(t, err)
		transactions, err := txService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "2025-07-14", transactions[0].Date)
	})

	t.Run("should never drive the balance negative", func(t *testing.T) {
		// given: the full balance is paid
		cardService, _ := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(100)})
		require.NoError(t, err)

		// when
		paid, err := cardService.ApplyPayment(ctx, created.ID, Payment{Amount: decimal.NewFromInt(100)})

		// then
		require.NoError(t, err)
		assert.True(t, paid.Balance.IsZero())
	})

	t.Run("should clamp an over-balance payment to zero and record the full amount", func(t *testing.T) {
		// given
		cardService, txService := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(400)})
		require.NoError(t, err)

		// when
		paid, err := cardService.ApplyPayment(ctx, created.ID, Payment{Amount: decimal.NewFromInt(500)})

		// then
		require.NoError(t, err)
		assert.True(t, paid.Balance.IsZero(), "got balance %s", paid.Balance)

		transactions, err := txService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "-500", transactions[0].Amount.String())
	})

	t.Run("should tag a back-dated payment with the payment month", func(t *testing.T) {
		// given: the clock is in July, the payment is dated in June
		cardService, txService := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(400)})
		require.NoError(t, err)

		// when
		_, err = cardService.ApplyPayment(ctx, created.ID, Payment{
			Amount: decimal.NewFromInt(50),
			Date:   "2025-06-30",
		})

		// then
		require.NoError(t, err)
		transactions, err := txService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "2025-06-30", transactions[0].Date)
		assert.Equal(t, "CC Payment - Blue Card [ccpay:Blue Card:2025-06]", transactions[0].Note)
	})

	t.Run("should reject negative payments", func(t *testing.T) {
		// given
		cardService, _ := setup()
		created, err := cardService.Create(ctx, Card{Name: "Blue Card", Limit: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(100)})
		require.NoError(t, err)

		// when
		_, err = cardService.ApplyPayment(ctx, created.ID, Payment{Amount: decimal.NewFromInt(-5)})

		// then
		assert.ErrorIs(t, err, ErrNegativePayment)
	})

	t.Run("should reject payments for unknown cards", func(t *testing.T) {
		// given
		cardService, _ := setup()

		// when
		_, err := cardService.ApplyPayment(ctx, 77, Payment{Amount: decimal.NewFromInt(5)})

		// then
		assert.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestCardService_Delete(t *testing.T) {
	t.Run("should renumber surviving cards", func(t *testing.T) {
		// given
		cardService, _ := setup()
		for _, name := range []string{"First", "Second", "Third"} {
			_, err := cardService.Create(ctx, Card{Name: name, Limit: decimal.NewFromInt(1000), Balance: decimal.Zero})
			require.NoError(t, err)
		}

		// when
		ok, err := cardService.Delete(ctx, 1)

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		cards, err := cardService.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, 1, cards[0].ID)
		assert.Equal(t, "Second", cards[0].Name)
		assert.Equal(t, 2, cards[1].ID)
		assert.Equal(t, "Third", cards[1].Name)
	})
}
