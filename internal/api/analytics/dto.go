package analytics

type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type SeriesBucketResponse struct {
	Label   string  `json:"label"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type LargestExpenseResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

type InsightsResponse struct {
	PercentChange         float64                 `json:"percent_change"`
	TopCategory           string                  `json:"top_category"`
	LargestExpense        *LargestExpenseResponse `json:"largest_expense,omitempty"`
	AveragePerExpense     float64                 `json:"average_per_expense"`
	DistinctCategoryCount int                     `json:"distinct_category_count"`
	ThisWeekTotal         float64                 `json:"this_week_total"`
	ThisWeekCount         int                     `json:"this_week_count"`
}
