package subscription

import (
	"strconv"
	"time"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
	"github.com/shopspring/decimal"
)

// Schema is the stored layout of the subscriptions table.
var Schema = tablestore.Schema{
	Name:    "subscriptions",
	Columns: []string{"id", "name", "amount", "cadence", "next_charge_date", "category"},
}

const CadenceMonthly = "monthly"

// Cadences lists the supported billing cadences. Charge posting currently
// reads only the next charge date; the cadence is informational.
var Cadences = []string{CadenceMonthly}

// Categories offered for subscriptions.
var Categories = []string{"Entertainment", "Bills", "Other"}

// Subscription is a recurring charge. Amount is an unsigned magnitude;
// posting stores the charge as a negative transaction regardless of sign.
type Subscription struct {
	ID             int
	Name           string
	Amount         decimal.Decimal
	Cadence        string
	NextChargeDate string
	Category       string
}

// ChargeInMonth reports whether the next charge date falls in the given
// month. Malformed dates never match.
func (s Subscription) ChargeInMonth(year int, month time.Month) bool {
	return utils.InMonth(s.NextChargeDate, year, month)
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidCadence(cadence string) bool {
	for _, c := range Cadences {
		if c == cadence {
			return true
		}
	}
	return false
}

func toRow(s Subscription) []string {
	return []string{strconv.Itoa(s.ID), s.Name, s.Amount.String(), s.Cadence, s.NextChargeDate, s.Category}
}

func fromRow(row []string) Subscription {
	return Subscription{
		ID:             utils.ParseID(row[0]),
		Name:           row[1],
		Amount:         utils.ParseAmount(row[2]),
		Cadence:        row[3],
		NextChargeDate: row[4],
		Category:       row[5],
	}
}
