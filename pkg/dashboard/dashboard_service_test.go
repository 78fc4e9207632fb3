package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/budget"
	"github.com/mnurse06/finance-tracker/pkg/card"
	"github.com/mnurse06/finance-tracker/pkg/goal"
	"github.com/mnurse06/finance-tracker/pkg/subscription"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

type dashboardFixture struct {
	service       *DashboardServiceImpl
	transactions  transaction.TransactionService
	subscriptions subscription.SubscriptionService
	cards         card.CardService
	goals         goal.GoalService
	budgets       budget.BudgetService
}

func newDashboardFixture(store tablestore.Store) dashboardFixture {
	transactions := transaction.NewTransactionService(transaction.NewTransactionRepo(store))
	subscriptions := subscription.NewSubscriptionService(subscription.NewSubscriptionRepo(store))
	cards := card.NewCardService(card.NewCardRepo(store), transactions, &utils.MockClock{FixedNow: time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC)})
	goals := goal.NewGoalService(goal.NewGoalRepo(store))
	budgets := budget.NewBudgetService(budget.NewBudgetRepo(store))
	return dashboardFixture{
		service:       NewDashboardService(transactions, subscriptions, cards, goals, budgets),
		transactions:  transactions,
		subscriptions: subscriptions,
		cards:         cards,
		goals:         goals,
		budgets:       budgets,
	}
}

func TestDashboardService_Overview(t *testing.T) {
	ctx := context.Background()

	t.Run("should build a full overview from stored tables", func(t *testing.T) {
		// given
		fixture := newDashboardFixture(tablestore.NewMemoryStore())

		_, err := fixture.transactions.Create(ctx, transaction.Transaction{Date: "2025-07-01", Amount: dec(t, "3000"), Category: "Income", Note: "Salary"})
		require.NoError(t, err)
		_, err = fixture.transactions.Create(ctx, transaction.Transaction{Date: "2025-07-02", Amount: dec(t, "-1200"), Category: "Rent"})
		require.NoError(t, err)
		_, err = fixture.transactions.Create(ctx, transaction.Transaction{Date: "2025-07-05", Amount: dec(t, "-450.25"), Category: "Food"})
		require.NoError(t, err)

		_, err = fixture.budgets.Set(ctx, budget.Budget{Category: "Food", MonthlyBudget: dec(t, "400")})
		require.NoError(t, err)

		_, err = fixture.cards.Create(ctx, card.Card{Name: "Blue", Limit: dec(t, "1000"), Balance: dec(t, "400")})
		require.NoError(t, err)

		for _, name := range []string{"Netflix", "Spotify", "Gym"} {
			_, err = fixture.subscriptions.Create(ctx, subscription.Subscription{Name: name, Amount: dec(t, "10"), NextChargeDate: "2025-07-01", Category: "Entertainment"})
			require.NoError(t, err)
		}

		_, err = fixture.goals.Create(ctx, goal.Goal{Name: "Vacation", TargetAmount: dec(t, "5000"), CurrentSaved: dec(t, "1250")})
		require.NoError(t, err)

		// when
		overview, err := fixture.service.Overview(ctx, 2025, time.July)

		// then
		require.NoError(t, err)
		assert.Equal(t, "3000", overview.Summary.Income.String())
		assert.Equal(t, "1650.25", overview.Summary.Expense.String())
		assert.Equal(t, "1349.75", overview.Summary.Net.String())

		require.Len(t, overview.Budgets, 1)
		assert.True(t, overview.Budgets[0].Over)
		assert.Equal(t, "50.25", overview.Budgets[0].Overage.String())

		assert.True(t, overview.Credit.Warning)

		require.Len(t, overview.Goals, 1)
		assert.Equal(t, "0.25", overview.Goals[0].Progress.String())

		assert.Equal(t, []string{
			tipHighUtilization,
			tipSubscriptionAudit,
			"Over budget in: Food. Consider moving discretionary spend to next month.",
		}, overview.Tips)
	})

	t.Run("should report zeros for a month with no activity", func(t *testing.T) {
		// given
		fixture := newDashboardFixture(tablestore.NewMemoryStore())

		// when
		overview, err := fixture.service.Overview(ctx, 2025, time.January)

		// then
		require.NoError(t, err)
		assert.Equal(t, "0", overview.Summary.Income.String())
		assert.Equal(t, "0", overview.Summary.Net.String())
		assert.Empty(t, overview.Budgets)
		assert.Empty(t, overview.Goals)
		assert.Empty(t, overview.Tips)
		assert.Equal(t, "0", overview.Credit.Utilization.String())
	})

	t.Run("should surface a failing table load", func(t *testing.T) {
		// given
		fixture := newDashboardFixture(failingStore{})

		// when
		_, err := fixture.service.Overview(ctx, 2025, time.July)

		// then
		assert.Error(t, err)
	})
}

type failingStore struct{}

func (failingStore) Load(context.Context, tablestore.Schema) (*tablestore.Table, error) {
	return nil, errors.New("storage offline")
}

func (failingStore) Save(context.Context, tablestore.Schema, *tablestore.Table) error {
	return errors.New("storage offline")
}
