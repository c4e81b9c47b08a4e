package records

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

func requiredText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", models.Validationf("%s is required", field)
	}
	return value, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func requiredDate(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", models.Validationf("%s is required", field)
	}
	// Accept full ISO timestamps from clients but store the calendar day only.
	if len(value) > len(models.DateLayout) && value[len(models.DateLayout)] == 'T' {
		value = value[:len(models.DateLayout)]
	}
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return "", models.Validationf("%s must be a date in YYYY-MM-DD format", field)
	}
	return day.Format(models.DateLayout), nil
}

func requiredCount(field string, n models.Number) (int, error) {
	if !n.IsSet() {
		return 0, models.Validationf("%s is required", field)
	}
	return wholeCount(field, n.Decimal())
}

func optionalCount(field string, n models.Number) (int, error) {
	if !n.IsSet() {
		return 0, nil
	}
	return wholeCount(field, n.Decimal())
}

func wholeCount(field string, v decimal.Decimal) (int, error) {
	if !v.IsInteger() {
		return 0, models.Validationf("%s must be a whole number", field)
	}
	if v.IsNegative() {
		return 0, models.Validationf("%s must not be negative", field)
	}
	if v.GreaterThan(decimal.NewFromInt(maxCount)) {
		return 0, models.Validationf("%s is too large", field)
	}
	return int(v.IntPart()), nil
}

func requiredFlockID(n models.Number) (uint, error) {
	if !n.IsSet() {
		return 0, models.Validationf("flockId is required")
	}
	id, err := wholeCount("flockId", n.Decimal())
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, models.Validationf("flockId must be positive")
	}
	return uint(id), nil
}

func requiredAmount(field string, n models.Number) (decimal.Decimal, error) {
	if !n.IsSet() {
		return decimal.Zero, models.Validationf("%s is required", field)
	}
	v := n.Decimal()
	if v.IsNegative() {
		return decimal.Zero, models.Validationf("%s must not be negative", field)
	}
	if !v.Equal(v.Truncate(2)) {
		return decimal.Zero, models.Validationf("%s must have at most two decimal places", field)
	}
	if v.GreaterThan(maxAmount) {
		return decimal.Zero, models.Validationf("%s is too large", field)
	}
	return v, nil
}

const maxCount = 1<<31 - 1

// Largest values the decimal(12,2) and decimal(14,2) columns hold.
var (
	maxAmount = decimal.RequireFromString("9999999999.99")
	maxTotal  = decimal.RequireFromString("999999999999.99")
)
