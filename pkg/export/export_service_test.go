package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

func TestExportService_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("should render a stored table as csv", func(t *testing.T) {
		// given
		store := tablestore.NewMemoryStore()
		transactions := transaction.NewTransactionService(transaction.NewTransactionRepo(store))
		_, err := transactions.Create(ctx, transaction.Transaction{
			Date:     "2025-07-01",
			Amount:   decimal.RequireFromString("-12.5"),
			Category: "Food",
			Note:     "lunch",
		})
		require.NoError(t, err)
		service := NewExportService(store)

		// when
		data, err := service.Render(ctx, "transactions")

		// then
		require.NoError(t, err)
		assert.Equal(t, "id,date,amount,category,note\n1,2025-07-01,-12.5,Food,lunch\n", string(data))
	})

	t.Run("should render exactly the bytes persisted by the file store", func(t *testing.T) {
		// given
		dir := t.TempDir()
		store := tablestore.NewFileStore(dir)
		transactions := transaction.NewTransactionService(transaction.NewTransactionRepo(store))
		_, err := transactions.Create(ctx, transaction.Transaction{
			Date:     "2025-07-01",
			Amount:   decimal.RequireFromString("100"),
			Category: "Income",
			Note:     "note, with comma",
		})
		require.NoError(t, err)
		service := NewExportService(store)

		// when
		data, err := service.Render(ctx, "transactions")

		// then
		require.NoError(t, err)
		persisted, err := os.ReadFile(filepath.Join(dir, "transactions.csv"))
		require.NoError(t, err)
		assert.Equal(t, persisted, data)
	})

	t.Run("should render an empty table as a bare header", func(t *testing.T) {
		// given
		service := NewExportService(tablestore.NewMemoryStore())

		// when
		data, err := service.Render(ctx, "budgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "category,monthly_budget\n", string(data))
	})

	t.Run("should reject an unknown table", func(t *testing.T) {
		// given
		service := NewExportService(tablestore.NewMemoryStore())

		// when
		_, err := service.Render(ctx, "wallets")

		// then
		assert.ErrorIs(t, err, ErrUnknownTable)
	})
}

func TestExportService_Tables(t *testing.T) {
	t.Run("should list all exportable tables alphabetically", func(t *testing.T) {
		// given
		service := NewExportService(tablestore.NewMemoryStore())

		// when
		tables := service.Tables()

		// then
		assert.Equal(t, []string{"budgets", "cards", "goals", "subscriptions", "transactions"}, tables)
	})
}
