package goal

import (
	"strconv"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// Schema is the stored layout of the goals table.
var Schema = tablestore.Schema{
	Name:    "goals",
	Columns: []string{"id", "name", "target_amount", "target_date", "current_saved"},
}

// Goal is a savings goal with a target amount and an optional target date.
type Goal struct {
	ID           int
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   string
	CurrentSaved decimal.Decimal
}

var one = decimal.NewFromInt(1)

// Progress is saved divided by target, clamped to [0, 1]. Goals without a
// positive target report zero.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	ratio := g.CurrentSaved.Div(g.TargetAmount)
	if ratio.IsNegative() {
		return decimal.Zero
	}
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}

func toRow(g Goal) []string {
	return []string{strconv.Itoa(g.ID), g.Name, g.TargetAmount.String(), g.TargetDate, g.CurrentSaved.String()}
}

func fromRow(row []string) Goal {
	return Goal{
		ID:           utils.ParseID(row[0]),
		Name:         row[1],
		TargetAmount: utils.ParseAmount(row[2]),
		TargetDate:   row[3],
		CurrentSaved: utils.ParseAmount(row[4]),
	}
}
