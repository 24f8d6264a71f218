package entity

import (
	"budgefy/internal/api/expense"
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryFoodDining     ExpenseCategory = "Food & Dining"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryShopping       ExpenseCategory = "Shopping"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryBillsUtilities ExpenseCategory = "Bills & Utilities"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryEducation      ExpenseCategory = "Education"
	CategoryPersonalCare   ExpenseCategory = "Personal Care"
	CategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories is the closed set of categories a record may carry.
// Order matches the category picker in the client.
var ExpenseCategories = []ExpenseCategory{
	CategoryFoodDining,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBillsUtilities,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryPersonalCare,
	CategoryOther,
}

func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}

const (
	ExpenseDateLayout = "2006-01-02"
	MaxTitleLength    = 100
)

// minAmount is the smallest recordable expense, one cent.
var minAmount = decimal.New(1, -2)

type Expense struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if e.Title == "" || len(e.Title) > MaxTitleLength {
		return expense.ErrInvalidTitle
	}

	if e.Amount.LessThan(minAmount) {
		return expense.ErrInvalidAmount
	}

	if !IsValidExpenseCategory(e.Category) {
		return expense.ErrInvalidCategory
	}

	if _, err := time.Parse(ExpenseDateLayout, e.Date); err != nil {
		return expense.ErrInvalidDate
	}

	return nil
}

// DateTime parses the record's calendar date. Records are validated on
// write, so a zero time only appears for rows that predate validation.
func (e *Expense) DateTime() time.Time {
	t, err := time.Parse(ExpenseDateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
