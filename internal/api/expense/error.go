package expense

import "budgefy/pkg/response"

var (
	ErrExpenseNotFound  = response.NewError(404, "expense not found")
	ErrExpenseNotOwned  = response.NewError(403, "expense does not belong to user")
	ErrInvalidTitle     = response.NewError(400, "expense title must be between 1 and 100 characters")
	ErrInvalidAmount    = response.NewError(400, "expense amount must be a positive number")
	ErrInvalidCategory  = response.NewError(400, "invalid expense category")
	ErrInvalidDate      = response.NewError(400, "expense date must be in YYYY-MM-DD format")
	ErrInvalidFilter    = response.NewError(400, "invalid filter parameters")
	ErrCreateExpense    = response.NewError(500, "failed to create expense")
	ErrUpdateExpense    = response.NewError(500, "failed to update expense")
	ErrDeleteExpense    = response.NewError(500, "failed to delete expense")
	ErrExportExpenses   = response.NewError(500, "failed to export expenses")
)
