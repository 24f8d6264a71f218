package entity

import (
	"strings"
	"testing"
	"time"

	"budgefy/internal/api/expense"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExpense() Expense {
	return Expense{
		ID:       "01J0000000000000000000000",
		UserID:   "user-1",
		Title:    "Coffee",
		Amount:   decimal.NewFromInt(150),
		Category: string(CategoryFoodDining),
		Date:     "2024-01-05",
	}
}

func TestExpenseValidate(t *testing.T) {
	exp := validExpense()
	require.NoError(t, exp.Validate())
}

func TestExpenseValidateRejectsBadTitle(t *testing.T) {
	exp := validExpense()
	exp.Title = ""
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidTitle)

	exp.Title = strings.Repeat("x", MaxTitleLength+1)
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidTitle)
}

func TestExpenseValidateRejectsBadAmount(t *testing.T) {
	exp := validExpense()
	exp.Amount = decimal.Zero
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidAmount)

	exp.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidAmount)
}

func TestExpenseValidateRejectsUnknownCategory(t *testing.T) {
	exp := validExpense()
	exp.Category = "Groceries"
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidCategory)
}

func TestExpenseValidateRejectsBadDate(t *testing.T) {
	exp := validExpense()
	exp.Date = "05-01-2024"
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidDate)

	exp.Date = "not a date"
	assert.ErrorIs(t, exp.Validate(), expense.ErrInvalidDate)
}

func TestExpenseCategoriesAreValid(t *testing.T) {
	assert.Len(t, ExpenseCategories, 10)
	for _, category := range ExpenseCategories {
		assert.True(t, IsValidExpenseCategory(string(category)))
	}
	assert.False(t, IsValidExpenseCategory("food & dining"))
}

func TestExpenseDateTime(t *testing.T) {
	exp := validExpense()
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), exp.DateTime())

	exp.Date = "garbage"
	assert.True(t, exp.DateTime().IsZero())
}
