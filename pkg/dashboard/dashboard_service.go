package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mnurse06/finance-tracker/pkg/budget"
	"github.com/mnurse06/finance-tracker/pkg/card"
	"github.com/mnurse06/finance-tracker/pkg/goal"
	"github.com/mnurse06/finance-tracker/pkg/subscription"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

// Overview is the full dashboard for one month.
type Overview struct {
	Year    int
	Month   time.Month
	Summary MonthSummary
	Budgets []BudgetStatus
	Credit  CreditOverview
	Goals   []GoalProgress
	Tips    []string
}

type DashboardService interface {
	Overview(ctx context.Context, year int, month time.Month) (Overview, error)
}

type DashboardServiceImpl struct {
	transactions  transaction.TransactionService
	subscriptions subscription.SubscriptionService
	cards         card.CardService
	goals         goal.GoalService
	budgets       budget.BudgetService
}

func NewDashboardService(
	transactions transaction.TransactionService,
	subscriptions subscription.SubscriptionService,
	cards card.CardService,
	goals goal.GoalService,
	budgets budget.BudgetService,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		transactions:  transactions,
		subscriptions: subscriptions,
		cards:         cards,
		goals:         goals,
		budgets:       budgets,
	}
}

// Overview loads the five tables and derives the month's aggregates,
// budget statuses, credit overview, goal progress and tips. The loads are
// independent reads, so they run concurrently.
func (s *DashboardServiceImpl) Overview(ctx context.Context, year int, month time.Month) (Overview, error) {
	var (
		transactions  []transaction.Transaction
		subscriptions []subscription.Subscription
		cards         []card.Card
		goals         []goal.Goal
		budgets       []budget.Budget
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		transactions, err = s.transactions.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		subscriptions, err = s.subscriptions.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		cards, err = s.cards.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		goals, err = s.goals.GetAll(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		budgets, err = s.budgets.GetAll(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return Overview{}, err
	}

	summary := Summarize(transactions, year, month)
	statuses := EvaluateBudgets(budgets, transactions, year, month)
	credit := EvaluateCredit(cards)
	return Overview{
		Year:    year,
		Month:   month,
		Summary: summary,
		Budgets: statuses,
		Credit:  credit,
		Goals:   EvaluateGoals(goals),
		Tips:    BuildTips(summary, credit, statuses, len(subscriptions)),
	}, nil
}
