package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	categorystore "github.com/carson-networks/budget-engine/internal/storage/category"
)

// CategoryType classifies a spending bucket. The numeric order is the
// rendering order of budget views: Need, Want, Saving, Income.
type CategoryType int8

const (
	CategoryTypeNeed CategoryType = iota
	CategoryTypeWant
	CategoryTypeSaving
	CategoryTypeIncome
)

func (t CategoryType) String() string {
	switch t {
	case CategoryTypeNeed:
		return "Need"
	case CategoryTypeWant:
		return "Want"
	case CategoryTypeSaving:
		return "Saving"
	case CategoryTypeIncome:
		return "Income"
	}
	return "Unknown"
}

// ValidCategoryType reports whether n maps to a defined CategoryType.
func ValidCategoryType(n int) bool {
	return n >= int(CategoryTypeNeed) && n <= int(CategoryTypeIncome)
}

// Category represents a planned-spend bucket in the service layer. Actual is
// always derived from the transaction set, never stored.
type Category struct {
	ID        uuid.UUID
	Month     Month
	Name      string
	Type      CategoryType
	Planned   decimal.Decimal
	Actual    decimal.Decimal
	Icon      string
	Color     string
	CreatedAt time.Time
}

// Variance is planned minus actual; positive means underspent.
func (c Category) Variance() decimal.Decimal {
	return c.Planned.Sub(c.Actual)
}

func CategoryTypeToStorage(t CategoryType) int16 {
	return int16(t)
}

func CategoryTypeFromStorage(t int16) CategoryType {
	return CategoryType(t)
}

func CategoryFromStorage(row *categorystore.Category, actual decimal.Decimal) Category {
	month, _ := ParseMonth(row.BudgetMonth)
	return Category{
		ID:        row.ID,
		Month:     month,
		Name:      row.Name,
		Type:      CategoryTypeFromStorage(row.Type),
		Planned:   row.Planned,
		Actual:    actual,
		Icon:      row.Icon,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}
