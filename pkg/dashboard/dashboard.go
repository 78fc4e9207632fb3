package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mnurse06/finance-tracker/pkg/budget"
	"github.com/mnurse06/finance-tracker/pkg/card"
	"github.com/mnurse06/finance-tracker/pkg/goal"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

// utilizationWarningThreshold is the aggregate credit utilization above
// which the overview carries a warning.
var utilizationWarningThreshold = decimal.New(3, -1)

// MonthSummary aggregates the ledger for one month. Income is the sum of
// positive amounts, Expense the sum of absolute negative amounts, and
// Net = Income - Expense. Transactions with unparseable dates are left out.
type MonthSummary struct {
	Income         decimal.Decimal
	Expense        decimal.Decimal
	Net            decimal.Decimal
	CategoryTotals []CategoryTotal
}

// CategoryTotal is the signed sum of one category's amounts in the month.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// BudgetStatus compares one budget against the month's spending in its
// category.
type BudgetStatus struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	// Pct is Spent/Limit capped at 1, or 0 for a non-positive limit.
	Pct decimal.Decimal
	// Over is set when a positive limit is exceeded.
	Over    bool
	Overage decimal.Decimal
}

// CardUtilization is one card's balance against its limit.
type CardUtilization struct {
	ID          int
	Name        string
	Limit       decimal.Decimal
	Balance     decimal.Decimal
	Utilization decimal.Decimal
}

// CreditOverview aggregates utilization across all cards. Utilization is 0
// when no card carries a positive limit.
type CreditOverview struct {
	Cards        []CardUtilization
	TotalLimit   decimal.Decimal
	TotalBalance decimal.Decimal
	Utilization  decimal.Decimal
	Warning      bool
}

// GoalProgress is one goal's saved amount against its target.
type GoalProgress struct {
	ID           int
	Name         string
	TargetAmount decimal.Decimal
	CurrentSaved decimal.Decimal
	Progress     decimal.Decimal
}

// Summarize aggregates the transactions dated in the given month. Category
// totals are sorted by signed total, smallest first, with ties broken by
// category name.
func Summarize(transactions []transaction.Transaction, year int, month time.Month) MonthSummary {
	summary := MonthSummary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.InMonth(year, month) {
			continue
		}
		if tx.Amount.IsPositive() {
			summary.Income = summary.Income.Add(tx.Amount)
		} else if tx.Amount.IsNegative() {
			summary.Expense = summary.Expense.Add(tx.Amount.Abs())
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	summary.Net = summary.Income.Sub(summary.Expense)

	summary.CategoryTotals = make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		summary.CategoryTotals = append(summary.CategoryTotals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(summary.CategoryTotals, func(i, j int) bool {
		a, b := summary.CategoryTotals[i], summary.CategoryTotals[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.LessThan(b.Total)
		}
		return a.Category < b.Category
	})
	return summary
}

// EvaluateBudgets reports each budget against the month's expenses in its
// category, in the stored budget order. Spent counts only negative amounts;
// refunds and income in the category do not offset it.
func EvaluateBudgets(budgets []budget.Budget, transactions []transaction.Transaction, year int, month time.Month) []BudgetStatus {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.InMonth(year, month) || !tx.Amount.IsNegative() {
			continue
		}
		spentByCategory[tx.Category] = spentByCategory[tx.Category].Add(tx.Amount.Abs())
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		status := BudgetStatus{
			Category: b.Category,
			Limit:    b.MonthlyBudget,
			Spent:    spentByCategory[b.Category],
			Pct:      decimal.Zero,
			Overage:  decimal.Zero,
		}
		if status.Limit.IsPositive() {
			status.Pct = status.Spent.Div(status.Limit)
			if status.Pct.GreaterThan(one) {
				status.Pct = one
			}
			if status.Spent.GreaterThan(status.Limit) {
				status.Over = true
				status.Overage = status.Spent.Sub(status.Limit)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}

var one = decimal.NewFromInt(1)

// EvaluateCredit aggregates balances against limits across all cards.
func EvaluateCredit(cards []card.Card) CreditOverview {
	overview := CreditOverview{
		Cards:        make([]CardUtilization, 0, len(cards)),
		TotalLimit:   decimal.Zero,
		TotalBalance: decimal.Zero,
		Utilization:  decimal.Zero,
	}
	for _, c := range cards {
		overview.Cards = append(overview.Cards, CardUtilization{
			ID:          c.ID,
			Name:        c.Name,
			Limit:       c.Limit,
			Balance:     c.Balance,
			Utilization: c.Utilization(),
		})
		overview.TotalLimit = overview.TotalLimit.Add(c.Limit)
		overview.TotalBalance = overview.TotalBalance.Add(c.Balance)
	}
	if overview.TotalLimit.IsPositive() {
		overview.Utilization = overview.TotalBalance.Div(overview.TotalLimit)
	}
	overview.Warning = overview.Utilization.GreaterThan(utilizationWarningThreshold)
	return overview
}

// EvaluateGoals reports saved-versus-target progress for each goal.
func EvaluateGoals(goals []goal.Goal) []GoalProgress {
	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, GoalProgress{
			ID:           g.ID,
			Name:         g.Name,
			TargetAmount: g.TargetAmount,
			CurrentSaved: g.CurrentSaved,
			Progress:     g.Progress(),
		})
	}
	return progress
}
