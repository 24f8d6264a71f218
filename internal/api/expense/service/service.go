package expenseService

import (
	"context"

	"budgefy/internal/api/expense"
	expenseRepository "budgefy/internal/api/expense/repository"
	"budgefy/internal/entity"
	"budgefy/pkg/broker"
	"budgefy/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ExpenseService interface {
	CreateExpense(c context.Context, user entity.UserLoginData, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error)
	GetExpense(c context.Context, user entity.UserLoginData, id string) (expense.ExpenseResponse, error)
	ListExpenses(c context.Context, user entity.UserLoginData, filter entity.ExpenseFilter) (expense.ExpenseListResponse, error)
	GetUserExpenses(c context.Context, userID string) ([]entity.Expense, error)
	UpdateExpense(c context.Context, user entity.UserLoginData, id string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error)
	DeleteExpense(c context.Context, user entity.UserLoginData, id string) error
	ExportExpenses(c context.Context, user entity.UserLoginData, filter entity.ExpenseFilter) ([]byte, string, error)
	Subscribe(ownerID string) (<-chan broker.ExpenseEvent, func())
}

type expenseService struct {
	log           *logrus.Logger
	expenseRepo   expenseRepository.Repository
	expenseBroker broker.IBroker
	utils         utils.IUtils
}

func New(log *logrus.Logger,
	expenseRepo expenseRepository.Repository,
	expenseBroker broker.IBroker,
	utils utils.IUtils,
) ExpenseService {
	return &expenseService{
		log:           log,
		expenseRepo:   expenseRepo,
		expenseBroker: expenseBroker,
		utils:         utils,
	}
}

func (s *expenseService) Subscribe(ownerID string) (<-chan broker.ExpenseEvent, func()) {
	return s.expenseBroker.Subscribe(ownerID)
}

func makeExpenseResponse(e entity.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:        e.ID,
		Title:     e.Title,
		Amount:    e.Amount.InexactFloat64(),
		Category:  e.Category,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
