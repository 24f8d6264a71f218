package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixtures() []Expense {
	mk := func(title, category, date string, amount int64) Expense {
		return Expense{
			ID:       title,
			UserID:   "user-1",
			Title:    title,
			Amount:   decimal.NewFromInt(amount),
			Category: category,
			Date:     date,
		}
	}
	return []Expense{
		mk("Morning Coffee", string(CategoryFoodDining), "2024-03-01", 4),
		mk("Bus ticket", string(CategoryTransportation), "2024-03-02", 2),
		mk("Flight to Oslo", string(CategoryTravel), "2024-03-10", 250),
		mk("Hotel", string(CategoryTravel), "2024-03-11", 120),
		mk("coffee beans", string(CategoryShopping), "2024-04-01", 15),
	}
}

func TestFilterZeroPassesEverything(t *testing.T) {
	expenses := filterFixtures()
	assert.True(t, ExpenseFilter{}.IsZero())
	assert.Equal(t, expenses, ExpenseFilter{}.Apply(expenses))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	filtered := ExpenseFilter{SearchTerm: "COFFEE"}.Apply(filterFixtures())

	require.Len(t, filtered, 2)
	assert.Equal(t, "Morning Coffee", filtered[0].Title)
	assert.Equal(t, "coffee beans", filtered[1].Title)
}

func TestFilterCategoriesMatchAnyOf(t *testing.T) {
	filter := ExpenseFilter{
		Categories: []string{string(CategoryTravel), string(CategoryShopping)},
	}
	filtered := filter.Apply(filterFixtures())

	require.Len(t, filtered, 3)
	for _, e := range filtered {
		assert.Contains(t, []string{string(CategoryTravel), string(CategoryShopping)}, e.Category)
	}
}

func TestFilterDateBoundsAreInclusive(t *testing.T) {
	from := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	filtered := ExpenseFilter{DateFrom: &from, DateTo: &to}.Apply(filterFixtures())

	require.Len(t, filtered, 2)
	assert.Equal(t, "Bus ticket", filtered[0].Title)
	assert.Equal(t, "Flight to Oslo", filtered[1].Title)
}

func TestFilterAmountBoundsAreInclusive(t *testing.T) {
	min := decimal.NewFromInt(4)
	max := decimal.NewFromInt(120)
	filtered := ExpenseFilter{AmountMin: &min, AmountMax: &max}.Apply(filterFixtures())

	require.Len(t, filtered, 3)
	assert.Equal(t, "Morning Coffee", filtered[0].Title)
	assert.Equal(t, "Hotel", filtered[1].Title)
	assert.Equal(t, "coffee beans", filtered[2].Title)
}

func TestFilterConstraintsAreConjunctive(t *testing.T) {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	min := decimal.NewFromInt(100)

	combined := ExpenseFilter{
		SearchTerm: "o",
		Categories: []string{string(CategoryTravel)},
		DateFrom:   &from,
		AmountMin:  &min,
	}

	expenses := filterFixtures()
	filtered := combined.Apply(expenses)

	// The conjunction must equal intersecting each constraint on its own,
	// regardless of the order they were applied in.
	stepwise := ExpenseFilter{AmountMin: &min}.Apply(
		ExpenseFilter{DateFrom: &from}.Apply(
			ExpenseFilter{Categories: []string{string(CategoryTravel)}}.Apply(
				ExpenseFilter{SearchTerm: "o"}.Apply(expenses))))

	assert.Equal(t, stepwise, filtered)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Flight to Oslo", filtered[0].Title)
	assert.Equal(t, "Hotel", filtered[1].Title)
}
