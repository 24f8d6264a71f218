package assistant

import (
	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
)

type ChatRequest struct {
	Messages []entity.ChatMessage `json:"messages" validate:"required,min=1"`
}

type ExpenseIntent struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

type ChatResponse struct {
	Reply          string                   `json:"reply"`
	Intent         *ExpenseIntent           `json:"intent,omitempty"`
	CreatedExpense *expense.ExpenseResponse `json:"created_expense,omitempty"`
}
