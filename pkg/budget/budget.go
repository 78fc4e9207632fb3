package budget

import (
	"github.com/shopspring/decimal"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

// Schema describes the budgets table. Rows are keyed by category; there is
// no numeric id column.
var Schema = tablestore.Schema{
	Name:    "budgets",
	Columns: []string{"category", "monthly_budget"},
}

type Budget struct {
	Category      string
	MonthlyBudget decimal.Decimal
}

// ValidCategory reports whether a budget may be defined for the category.
// Income is a transaction category but never a spending budget.
func ValidCategory(category string) bool {
	return category != transaction.CategoryIncome && transaction.ValidCategory(category)
}

func fromRow(row []string) Budget {
	return Budget{
		Category:      row[0],
		MonthlyBudget: utils.ParseAmount(row[1]),
	}
}

func toRow(b Budget) []string {
	return []string{b.Category, b.MonthlyBudget.String()}
}
