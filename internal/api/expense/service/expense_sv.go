package expenseService

import (
	"context"
	"time"

	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
	"budgefy/pkg/broker"
	contextPkg "budgefy/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func (s *expenseService) CreateExpense(c context.Context, user entity.UserLoginData, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return expense.ExpenseResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate expense ID")
		return expense.ExpenseResponse{}, err
	}

	exp := entity.Expense{
		ID:       id,
		UserID:   user.ID,
		Title:    req.Title,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: req.Category,
		Date:     req.Date,
	}

	if err := exp.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Expense validation failed")
		return expense.ExpenseResponse{}, err
	}

	if err := repo.Expenses.CreateExpense(c, exp); err != nil {
		return expense.ExpenseResponse{}, err
	}

	exp.CreatedAt = time.Now()
	exp.UpdatedAt = exp.CreatedAt

	s.expenseBroker.Publish(user.ID, broker.ExpenseEvent{
		Type:    broker.EventExpenseCreated,
		Expense: exp,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": exp.ID,
		"user_id":    user.ID,
	}).Info("Expense created")

	return makeExpenseResponse(exp), nil
}

func (s *expenseService) GetExpense(c context.Context, user entity.UserLoginData, id string) (expense.ExpenseResponse, error) {
	exp, err := s.getOwnedExpense(c, user, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return makeExpenseResponse(exp), nil
}

func (s *expenseService) ListExpenses(c context.Context, user entity.UserLoginData, filter entity.ExpenseFilter) (expense.ExpenseListResponse, error) {
	expenses, err := s.GetUserExpenses(c, user.ID)
	if err != nil {
		return expense.ExpenseListResponse{}, err
	}

	filtered := filter.Apply(expenses)

	responses := make([]expense.ExpenseResponse, 0, len(filtered))
	total := decimal.Zero
	for _, e := range filtered {
		responses = append(responses, makeExpenseResponse(e))
		total = total.Add(e.Amount)
	}

	return expense.ExpenseListResponse{
		Expenses: responses,
		Total:    total.InexactFloat64(),
		Count:    len(filtered),
	}, nil
}

func (s *expenseService) GetUserExpenses(c context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Expenses.ListByUser(c, userID)
}

func (s *expenseService) UpdateExpense(c context.Context, user entity.UserLoginData, id string, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	exp, err := s.getOwnedExpense(c, user, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	repo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return expense.ExpenseResponse{}, err
	}

	if req.Title != "" {
		exp.Title = req.Title
	}
	if req.Amount != nil {
		exp.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != "" {
		exp.Category = req.Category
	}
	if req.Date != "" {
		exp.Date = req.Date
	}

	if err := exp.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Expense validation failed")
		return expense.ExpenseResponse{}, err
	}

	if err := repo.Expenses.UpdateExpense(c, exp); err != nil {
		return expense.ExpenseResponse{}, err
	}

	exp.UpdatedAt = time.Now()

	s.expenseBroker.Publish(user.ID, broker.ExpenseEvent{
		Type:    broker.EventExpenseUpdated,
		Expense: exp,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": exp.ID,
		"user_id":    user.ID,
	}).Info("Expense updated")

	return makeExpenseResponse(exp), nil
}

func (s *expenseService) DeleteExpense(c context.Context, user entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(c)

	exp, err := s.getOwnedExpense(c, user, id)
	if err != nil {
		return err
	}

	repo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Expenses.DeleteExpense(c, id); err != nil {
		return err
	}

	s.expenseBroker.Publish(user.ID, broker.ExpenseEvent{
		Type:    broker.EventExpenseDeleted,
		Expense: exp,
	})

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": id,
		"user_id":    user.ID,
	}).Info("Expense deleted")

	return nil
}

func (s *expenseService) getOwnedExpense(c context.Context, user entity.UserLoginData, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Expense{}, err
	}

	exp, err := repo.Expenses.GetByID(c, id)
	if err != nil {
		return entity.Expense{}, err
	}

	if exp.UserID != user.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"expense_id": id,
			"user_id":    user.ID,
		}).Warn("Expense does not belong to user")
		return entity.Expense{}, expense.ErrExpenseNotOwned
	}

	return exp, nil
}
