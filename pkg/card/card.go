package card

import (
	"strconv"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// Schema is the stored layout of the cards table.
var Schema = tablestore.Schema{
	Name:    "cards",
	Columns: []string{"id", "name", "limit", "balance"},
}

// Card is a credit card with a spending limit and a current balance.
type Card struct {
	ID      int
	Name    string
	Limit   decimal.Decimal
	Balance decimal.Decimal
}

// Utilization is balance divided by limit, zero for cards without a
// positive limit.
func (c Card) Utilization() decimal.Decimal {
	if !c.Limit.IsPositive() {
		return decimal.Zero
	}
	return c.Balance.Div(c.Limit)
}

func toRow(c Card) []string {
	return []string{strconv.Itoa(c.ID), c.Name, c.Limit.String(), c.Balance.String()}
}

func fromRow(row []string) Card {
	return Card{
		ID:      utils.ParseID(row[0]),
		Name:    row[1],
		Limit:   utils.ParseAmount(row[2]),
		Balance: utils.ParseAmount(row[3]),
	}
}
