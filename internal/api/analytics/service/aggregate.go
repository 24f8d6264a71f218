package analyticsService

import (
	"sort"
	"time"

	"budgefy/internal/entity"

	"github.com/shopspring/decimal"
)

// The aggregations below are pure functions of a record set and a
// reference instant. Sums stay in decimal until the response layer
// rounds them, so repeated aggregation never drifts.

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

type SeriesBucket struct {
	Label   string
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

type Insights struct {
	PercentChange         decimal.Decimal
	TopCategory           string
	LargestExpense        *entity.Expense
	AveragePerExpense     decimal.Decimal
	DistinctCategoryCount int
	ThisWeekTotal         decimal.Decimal
	ThisWeekCount         int
}

const (
	monthlyBucketCount = 12
	dailyBucketCount   = 30
	monthLabelLayout   = "2006-01"
)

// CategoryTotals groups records by category, sorted by sum descending
// with ties broken by category name so output order is deterministic.
func CategoryTotals(records []entity.Expense) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	for _, record := range records {
		bucket, ok := byCategory[record.Category]
		if !ok {
			bucket = &CategoryTotal{Category: record.Category}
			byCategory[record.Category] = bucket
		}
		bucket.Total = bucket.Total.Add(record.Amount)
		bucket.Count++
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, bucket := range byCategory {
		totals = append(totals, *bucket)
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals
}

// MonthlySeries returns exactly twelve calendar-month buckets ending at
// now's month, zero-filled for months without records.
func MonthlySeries(records []entity.Expense, now time.Time) []SeriesBucket {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]SeriesBucket, monthlyBucketCount)
	for i := range buckets {
		month := anchor.AddDate(0, i-(monthlyBucketCount-1), 0)
		buckets[i].Label = month.Format(monthLabelLayout)
	}

	for _, record := range records {
		date := record.DateTime()
		diff := (anchor.Year()-date.Year())*12 + int(anchor.Month()) - int(date.Month())
		if diff < 0 || diff >= monthlyBucketCount {
			continue
		}
		idx := monthlyBucketCount - 1 - diff
		buckets[idx].Total = buckets[idx].Total.Add(record.Amount)
		buckets[idx].Count++
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].Average = buckets[i].Total.Div(decimal.NewFromInt(int64(buckets[i].Count)))
		}
	}

	return buckets
}

// DailySeries returns exactly thirty calendar-day buckets ending at
// now's date, zero-filled.
func DailySeries(records []entity.Expense, now time.Time) []SeriesBucket {
	buckets := make([]SeriesBucket, dailyBucketCount)
	index := make(map[string]int, dailyBucketCount)
	for i := range buckets {
		day := now.AddDate(0, 0, i-(dailyBucketCount-1))
		label := day.Format(entity.ExpenseDateLayout)
		buckets[i].Label = label
		index[label] = i
	}

	for _, record := range records {
		idx, ok := index[record.Date]
		if !ok {
			continue
		}
		buckets[idx].Total = buckets[idx].Total.Add(record.Amount)
		buckets[idx].Count++
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].Average = buckets[i].Total.Div(decimal.NewFromInt(int64(buckets[i].Count)))
		}
	}

	return buckets
}

// ComputeInsights derives the dashboard summary. The month-over-month
// change uses rolling 30-day windows rather than calendar months, which
// matches the behavior clients already depend on.
func ComputeInsights(records []entity.Expense, now time.Time) Insights {
	insights := Insights{}
	if len(records) == 0 {
		return insights
	}

	windowStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)
	weekStart := now.AddDate(0, 0, -7)

	var total, thisMonth, lastMonth decimal.Decimal
	var largest *entity.Expense

	for i := range records {
		record := &records[i]
		total = total.Add(record.Amount)

		date := record.DateTime()
		switch {
		case date.After(windowStart) && !date.After(now):
			thisMonth = thisMonth.Add(record.Amount)
		case date.After(previousStart) && !date.After(windowStart):
			lastMonth = lastMonth.Add(record.Amount)
		}

		if date.After(weekStart) && !date.After(now) {
			insights.ThisWeekTotal = insights.ThisWeekTotal.Add(record.Amount)
			insights.ThisWeekCount++
		}

		if largest == nil || record.Amount.GreaterThan(largest.Amount) {
			largest = record
		}
	}

	if !lastMonth.IsZero() {
		insights.PercentChange = thisMonth.Sub(lastMonth).
			Div(lastMonth).
			Mul(decimal.NewFromInt(100))
	}

	totals := CategoryTotals(records)
	insights.TopCategory = totals[0].Category
	insights.DistinctCategoryCount = len(totals)
	insights.LargestExpense = largest
	insights.AveragePerExpense = total.Div(decimal.NewFromInt(int64(len(records))))

	return insights
}
