package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ExpenseDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Title     sql.NullString `db:"title"`
	Amount    sql.NullString `db:"amount"`
	Category  sql.NullString `db:"category"`
	Date      sql.NullTime   `db:"date"`
	CreatedAt sql.NullTime   `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         exp.ID,
		"user_id":    exp.UserID,
		"title":      exp.Title,
		"amount":     exp.Amount.String(),
		"category":   exp.Category,
		"date":       exp.Date,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateExpense")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var exp ExpenseDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&exp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(exp), nil
}

func (r *expenseRepository) ListByUser(c context.Context, userID string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryListByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUser execution err")
		return nil, err
	}
	defer rows.Close()

	expenses := make([]entity.Expense, 0)
	for rows.Next() {
		var exp ExpenseDB
		if err := rows.StructScan(&exp); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("ListByUser scan err")
			return nil, err
		}
		expenses = append(expenses, r.makeExpense(exp))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) UpdateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         exp.ID,
		"title":      exp.Title,
		"amount":     exp.Amount.String(),
		"category":   exp.Category,
		"date":       exp.Date,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("UpdateExpense no rows found")
			return expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense execution err")
		return err
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense execution err")
		return err
	}

	return nil
}

func (r *expenseRepository) makeExpense(exp ExpenseDB) entity.Expense {
	var createdAt, updatedAt time.Time

	if exp.CreatedAt.Valid {
		createdAt = exp.CreatedAt.Time
	}

	if exp.UpdatedAt.Valid {
		updatedAt = exp.UpdatedAt.Time
	}

	var date string
	if exp.Date.Valid {
		date = exp.Date.Time.Format(entity.ExpenseDateLayout)
	}

	amount := decimal.Zero
	if exp.Amount.Valid {
		if parsed, err := decimal.NewFromString(exp.Amount.String); err == nil {
			amount = parsed
		} else {
			r.log.WithFields(logrus.Fields{
				"expense_id": exp.ID.String,
				"error":      err.Error(),
			}).Error("Failed to parse stored amount")
		}
	}

	return entity.Expense{
		ID:        exp.ID.String,
		UserID:    exp.UserID.String,
		Title:     exp.Title.String,
		Amount:    amount,
		Category:  exp.Category.String,
		Date:      date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
