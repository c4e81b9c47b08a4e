package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount is a stored quantity or price with at most two decimals.
// SQLite keeps it as text since its numeric affinity rounds through float64.
// Other dialects get an exact decimal column sized by the precision and scale tags.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// GormDBDataType picks the column type per dialect.
func (Amount) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	precision, scale := field.Precision, field.Scale
	if precision == 0 {
		precision, scale = 12, 2
	}
	return fmt.Sprintf("decimal(%d,%d)", precision, scale)
}

// FormatMoney renders an amount with two decimals behind the currency prefix.
func FormatMoney(currency string, amount decimal.Decimal) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}
