package transaction

import (
	"strconv"
	"time"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// Schema is the stored layout of the transactions table.
var Schema = tablestore.Schema{
	Name:    "transactions",
	Columns: []string{"id", "date", "amount", "category", "note"},
}

const (
	CategoryIncome = "Income"
	CategoryBills  = "Bills"
	CategoryOther  = "Other"
)

// Categories is the fixed category set offered for transactions.
var Categories = []string{CategoryIncome, "Rent", "Food", "Transport", "Shopping", CategoryBills, CategoryOther}

// Transaction is a single ledger entry. Amount is signed: positive for
// income, negative for expenses. Date keeps the raw stored string so that
// malformed historical values survive a load/save cycle untouched.
type Transaction struct {
	ID       int
	Date     string
	Amount   decimal.Decimal
	Category string
	Note     string
}

// InMonth reports whether the transaction is dated in the given month.
// Transactions with malformed dates never match.
func (t Transaction) InMonth(year int, month time.Month) bool {
	return utils.InMonth(t.Date, year, month)
}

// ValidCategory reports whether the category is one of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategory maps values outside the fixed set to Other. Stored rows
// keep their raw category; this is a display and selection concern only.
func NormalizeCategory(category string) string {
	if ValidCategory(category) {
		return category
	}
	return CategoryOther
}

func toRow(t Transaction) []string {
	return []string{strconv.Itoa(t.ID), t.Date, t.Amount.String(), t.Category, t.Note}
}

func fromRow(row []string) Transaction {
	return Transaction{
		ID:       utils.ParseID(row[0]),
		Date:     row[1],
		Amount:   utils.ParseAmount(row[2]),
		Category: row[3],
		Note:     row[4],
	}
}
