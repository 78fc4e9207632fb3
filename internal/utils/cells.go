package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ParseID parses a stored id cell. Malformed cells become 0, never an error.
func ParseID(value string) int {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return id
}

// ParseAmount parses a stored monetary cell. Missing or malformed values
// load as zero; loading a table never fails on a bad number.
func ParseAmount(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		log.Debugf("unparseable amount cell %q, treating as zero", value)
		return decimal.Zero
	}
	return amount
}
