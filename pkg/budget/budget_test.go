package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
)

func newBudgetService() *BudgetServiceImpl {
	return NewBudgetService(NewBudgetRepo(tablestore.NewMemoryStore()))
}

func TestBudgetService_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a budget for a new category", func(t *testing.T) {
		// given
		service := newBudgetService()

		// when
		saved, err := service.Set(ctx, Budget{Category: "Food", MonthlyBudget: decimal.NewFromInt(400)})

		// then
		require.NoError(t, err)
		assert.Equal(t, "Food", saved.Category)

		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.Equal(t, "400", budgets[0].MonthlyBudget.String())
	})

	t.Run("should overwrite an existing budget instead of adding a duplicate", func(t *testing.T) {
		// given
		service := newBudgetService()
		_, err := service.Set(ctx, Budget{Category: "Food", MonthlyBudget: decimal.NewFromInt(400)})
		require.NoError(t, err)
		_, err = service.Set(ctx, Budget{Category: "Transport", MonthlyBudget: decimal.NewFromInt(120)})
		require.NoError(t, err)

		// when
		_, err = service.Set(ctx, Budget{Category: "Food", MonthlyBudget: decimal.NewFromInt(550)})

		// then
		require.NoError(t, err)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 2)
		assert.Equal(t, "Food", budgets[0].Category)
		assert.Equal(t, "550", budgets[0].MonthlyBudget.String())
		assert.Equal(t, "Transport", budgets[1].Category)
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		// given
		service := newBudgetService()

		// when
		_, err := service.Set(ctx, Budget{Category: "Yachts", MonthlyBudget: decimal.NewFromInt(10)})

		// then
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("should reject a budget for the income category", func(t *testing.T) {
		// given
		service := newBudgetService()

		// when
		_, err := service.Set(ctx, Budget{Category: "Income", MonthlyBudget: decimal.NewFromInt(10)})

		// then
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("should reject a negative budget", func(t *testing.T) {
		// given
		service := newBudgetService()

		// when
		_, err := service.Set(ctx, Budget{Category: "Food", MonthlyBudget: decimal.NewFromInt(-5)})

		// then
		assert.ErrorIs(t, err, ErrNegativeBudget)
	})
}

func TestBudgetService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete a budget by category", func(t *testing.T) {
		// given
		service := newBudgetService()
		_, err := service.Set(ctx, Budget{Category: "Food", MonthlyBudget: decimal.NewFromInt(400)})
		require.NoError(t, err)
		_, err = service.Set(ctx, Budget{Category: "Transport", MonthlyBudget: decimal.NewFromInt(120)})
		require.NoError(t, err)

		// when
		found, err := service.Delete(ctx, "Food")

		// then
		require.NoError(t, err)
		assert.True(t, found)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.Equal(t, "Transport", budgets[0].Category)
	})

	t.Run("should report a missing budget", func(t *testing.T) {
		// given
		service := newBudgetService()

		// when
		found, err := service.Delete(ctx, "Food")

		// then
		require.NoError(t, err)
		assert.False(t, found)
	})
}
