package expense

import "time"

type CreateExpenseRequest struct {
	Title    string  `json:"title" validate:"required,max=100"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Date     string  `json:"date" validate:"required"`
}

// UpdateExpenseRequest carries a partial update; absent fields keep
// their stored values.
type UpdateExpenseRequest struct {
	Title    string   `json:"title" validate:"omitempty,max=100"`
	Amount   *float64 `json:"amount" validate:"omitempty,gt=0"`
	Category string   `json:"category" validate:"omitempty"`
	Date     string   `json:"date" validate:"omitempty"`
}

type ExpenseResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    float64           `json:"total"`
	Count    int               `json:"count"`
}
