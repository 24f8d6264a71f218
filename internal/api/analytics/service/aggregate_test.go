package analyticsService

import (
	"testing"
	"time"

	"budgefy/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggregateNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func record(title, category, date string, amount float64) entity.Expense {
	return entity.Expense{
		ID:       title,
		UserID:   "user-1",
		Title:    title,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     date,
	}
}

func sampleRecords() []entity.Expense {
	return []entity.Expense{
		record("Coffee", string(entity.CategoryFoodDining), "2024-06-14", 5),
		record("Bus", string(entity.CategoryTransportation), "2024-06-13", 3),
		record("Lunch", string(entity.CategoryFoodDining), "2024-06-01", 12),
		record("Cinema", string(entity.CategoryEntertainment), "2024-05-20", 15),
		record("Train", string(entity.CategoryTransportation), "2024-05-02", 14),
		record("Old rent", string(entity.CategoryBillsUtilities), "2023-11-30", 800),
	}
}

func TestCategoryTotalsConservesTheSum(t *testing.T) {
	records := sampleRecords()

	var want decimal.Decimal
	for _, r := range records {
		want = want.Add(r.Amount)
	}

	var got decimal.Decimal
	for _, total := range CategoryTotals(records) {
		got = got.Add(total.Total)
	}

	assert.True(t, got.Equal(want), "category totals must sum to the grand total")
}

func TestCategoryTotalsOrdering(t *testing.T) {
	records := []entity.Expense{
		record("Coffee", string(entity.CategoryFoodDining), "2024-06-14", 10),
		record("Bus", string(entity.CategoryTransportation), "2024-06-13", 10),
		record("Book", string(entity.CategoryEducation), "2024-06-12", 25),
	}

	totals := CategoryTotals(records)
	require.Len(t, totals, 3)

	assert.Equal(t, string(entity.CategoryEducation), totals[0].Category)
	// Equal sums fall back to category name order.
	assert.Equal(t, string(entity.CategoryFoodDining), totals[1].Category)
	assert.Equal(t, string(entity.CategoryTransportation), totals[2].Category)
}

func TestCategoryTotalsEmpty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
}

func TestMonthlySeriesShape(t *testing.T) {
	buckets := MonthlySeries(sampleRecords(), aggregateNow)

	require.Len(t, buckets, 12)
	assert.Equal(t, "2023-07", buckets[0].Label)
	assert.Equal(t, "2024-06", buckets[11].Label)

	byLabel := map[string]SeriesBucket{}
	for _, b := range buckets {
		byLabel[b.Label] = b
	}

	june := byLabel["2024-06"]
	assert.Equal(t, 3, june.Count)
	assert.True(t, june.Total.Equal(decimal.NewFromInt(20)))

	may := byLabel["2024-05"]
	assert.Equal(t, 2, may.Count)
	assert.True(t, may.Total.Equal(decimal.NewFromInt(29)))

	// November 2023 falls outside the twelve-month window.
	november := byLabel["2023-11"]
	assert.Equal(t, 0, november.Count)
	assert.True(t, november.Total.IsZero())
	assert.True(t, november.Average.IsZero())

	assert.True(t, june.Average.Equal(june.Total.Div(decimal.NewFromInt(3))))
}

func TestMonthlySeriesZeroFillsWithoutRecords(t *testing.T) {
	buckets := MonthlySeries(nil, aggregateNow)

	require.Len(t, buckets, 12)
	for _, b := range buckets {
		assert.True(t, b.Total.IsZero())
		assert.Zero(t, b.Count)
	}
}

func TestDailySeriesShape(t *testing.T) {
	buckets := DailySeries(sampleRecords(), aggregateNow)

	require.Len(t, buckets, 30)
	assert.Equal(t, "2024-05-17", buckets[0].Label)
	assert.Equal(t, "2024-06-15", buckets[29].Label)

	var counted int
	for _, b := range buckets {
		counted += b.Count
	}
	// Coffee, Bus, Lunch and Cinema fall inside the trailing thirty days.
	assert.Equal(t, 4, counted)
}

func TestComputeInsightsEmptyIsAllZeroes(t *testing.T) {
	insights := ComputeInsights(nil, aggregateNow)

	assert.True(t, insights.PercentChange.IsZero())
	assert.Empty(t, insights.TopCategory)
	assert.Nil(t, insights.LargestExpense)
	assert.True(t, insights.AveragePerExpense.IsZero())
	assert.Zero(t, insights.DistinctCategoryCount)
	assert.True(t, insights.ThisWeekTotal.IsZero())
	assert.Zero(t, insights.ThisWeekCount)
}

func TestComputeInsights(t *testing.T) {
	records := sampleRecords()
	insights := ComputeInsights(records, aggregateNow)

	// thisMonth = 5 + 3 + 12 + 15 = 35, lastMonth = 14.
	wantChange := decimal.NewFromInt(35).
		Sub(decimal.NewFromInt(14)).
		Div(decimal.NewFromInt(14)).
		Mul(decimal.NewFromInt(100))
	assert.True(t, insights.PercentChange.Equal(wantChange))

	assert.Equal(t, string(entity.CategoryBillsUtilities), insights.TopCategory)
	require.NotNil(t, insights.LargestExpense)
	assert.Equal(t, "Old rent", insights.LargestExpense.Title)
	assert.Equal(t, 4, insights.DistinctCategoryCount)

	assert.Equal(t, 2, insights.ThisWeekCount)
	assert.True(t, insights.ThisWeekTotal.Equal(decimal.NewFromInt(8)))

	wantAverage := decimal.NewFromInt(849).Div(decimal.NewFromInt(6))
	assert.True(t, insights.AveragePerExpense.Equal(wantAverage))
}

func TestComputeInsightsNoPriorWindow(t *testing.T) {
	records := []entity.Expense{
		record("Coffee", string(entity.CategoryFoodDining), "2024-06-14", 5),
	}

	insights := ComputeInsights(records, aggregateNow)
	// Nothing in the previous window means no defined change.
	assert.True(t, insights.PercentChange.IsZero())
}

func TestComputeInsightsLargestKeepsFirstOnTie(t *testing.T) {
	records := []entity.Expense{
		record("First", string(entity.CategoryOther), "2024-06-10", 50),
		record("Second", string(entity.CategoryOther), "2024-06-11", 50),
	}

	insights := ComputeInsights(records, aggregateNow)
	require.NotNil(t, insights.LargestExpense)
	assert.Equal(t, "First", insights.LargestExpense.Title)
}
