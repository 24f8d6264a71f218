package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseFilter narrows a record set for listing and export. Bounds are
// pointers so "not set" is distinguishable from zero values; an empty
// category list allows every category.
type ExpenseFilter struct {
	SearchTerm string
	Categories []string
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
}

func (f ExpenseFilter) IsZero() bool {
	return f.SearchTerm == "" &&
		len(f.Categories) == 0 &&
		f.DateFrom == nil && f.DateTo == nil &&
		f.AmountMin == nil && f.AmountMax == nil
}

// Matches reports whether a record satisfies every set constraint. The
// result is a pure conjunction, so applying constraints in any order
// yields the same surviving set.
func (f ExpenseFilter) Matches(e Expense) bool {
	if f.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.SearchTerm)) {
		return false
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if e.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DateFrom != nil || f.DateTo != nil {
		date := e.DateTime()
		if f.DateFrom != nil && date.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && date.After(*f.DateTo) {
			return false
		}
	}

	if f.AmountMin != nil && e.Amount.LessThan(*f.AmountMin) {
		return false
	}
	if f.AmountMax != nil && e.Amount.GreaterThan(*f.AmountMax) {
		return false
	}

	return true
}

// Apply returns the records that pass the filter, preserving order.
func (f ExpenseFilter) Apply(expenses []Expense) []Expense {
	if f.IsZero() {
		return expenses
	}

	filtered := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
