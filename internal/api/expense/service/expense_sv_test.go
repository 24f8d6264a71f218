package expenseService

import (
	"bytes"
	"context"
	"testing"

	"budgefy/internal/api/expense"
	expenseRepository "budgefy/internal/api/expense/repository"
	"budgefy/internal/entity"
	"budgefy/pkg/broker"
	"budgefy/pkg/log"
	"budgefy/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeStore backs the repository client with an in-memory slice so the
// service can be exercised without a database.
type fakeStore struct {
	expenses []entity.Expense
}

func (f *fakeStore) CreateExpense(_ context.Context, exp entity.Expense) error {
	f.expenses = append(f.expenses, exp)
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (entity.Expense, error) {
	for _, exp := range f.expenses {
		if exp.ID == id {
			return exp, nil
		}
	}
	return entity.Expense{}, expense.ErrExpenseNotFound
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]entity.Expense, error) {
	var owned []entity.Expense
	for _, exp := range f.expenses {
		if exp.UserID == userID {
			owned = append(owned, exp)
		}
	}
	return owned, nil
}

func (f *fakeStore) UpdateExpense(_ context.Context, exp entity.Expense) error {
	for i := range f.expenses {
		if f.expenses[i].ID == exp.ID {
			f.expenses[i] = exp
			return nil
		}
	}
	return expense.ErrExpenseNotFound
}

func (f *fakeStore) DeleteExpense(_ context.Context, id string) error {
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return expense.ErrExpenseNotFound
}

type fakeRepository struct {
	store *fakeStore
}

func (f *fakeRepository) NewClient(bool) (expenseRepository.Client, error) {
	return expenseRepository.Client{
		Expenses: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(store *fakeStore) (ExpenseService, broker.IBroker) {
	b := broker.New()
	svc := New(log.NewLogger(), &fakeRepository{store: store}, b, utils.New())
	return svc, b
}

var testUser = entity.UserLoginData{ID: "user-1", Email: "a@b.co", Username: "a"}

func TestCreateExpensePublishesEvent(t *testing.T) {
	svc, b := newTestService(&fakeStore{})

	events, unsubscribe := b.Subscribe(testUser.ID)
	defer unsubscribe()

	resp, err := svc.CreateExpense(context.Background(), testUser, expense.CreateExpenseRequest{
		Title:    "Coffee",
		Amount:   4.5,
		Category: string(entity.CategoryFoodDining),
		Date:     "2024-06-14",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 4.5, resp.Amount)

	event := <-events
	assert.Equal(t, broker.EventExpenseCreated, event.Type)
	assert.Equal(t, resp.ID, event.Expense.ID)
}

func TestCreateExpenseRejectsInvalid(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(store)

	_, err := svc.CreateExpense(context.Background(), testUser, expense.CreateExpenseRequest{
		Title:    "Coffee",
		Amount:   4.5,
		Category: "Groceries",
		Date:     "2024-06-14",
	})
	assert.ErrorIs(t, err, expense.ErrInvalidCategory)
	assert.Empty(t, store.expenses)
}

func TestListExpensesFiltersAndTotals(t *testing.T) {
	store := &fakeStore{expenses: []entity.Expense{
		{ID: "1", UserID: "user-1", Title: "Coffee", Amount: decimal.NewFromFloat(4.5), Category: string(entity.CategoryFoodDining), Date: "2024-06-14"},
		{ID: "2", UserID: "user-1", Title: "Bus", Amount: decimal.NewFromInt(2), Category: string(entity.CategoryTransportation), Date: "2024-06-13"},
		{ID: "3", UserID: "user-2", Title: "Hotel", Amount: decimal.NewFromInt(120), Category: string(entity.CategoryTravel), Date: "2024-06-12"},
	}}
	svc, _ := newTestService(store)

	all, err := svc.ListExpenses(context.Background(), testUser, entity.ExpenseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)
	assert.Equal(t, 6.5, all.Total)

	food, err := svc.ListExpenses(context.Background(), testUser, entity.ExpenseFilter{
		Categories: []string{string(entity.CategoryFoodDining)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, food.Count)
	assert.Equal(t, "Coffee", food.Expenses[0].Title)
}

func TestUpdateExpenseRejectsForeignRecord(t *testing.T) {
	store := &fakeStore{expenses: []entity.Expense{
		{ID: "1", UserID: "user-2", Title: "Hotel", Amount: decimal.NewFromInt(120), Category: string(entity.CategoryTravel), Date: "2024-06-12"},
	}}
	svc, _ := newTestService(store)

	_, err := svc.UpdateExpense(context.Background(), testUser, "1", expense.UpdateExpenseRequest{
		Title: "Hostel",
	})
	assert.ErrorIs(t, err, expense.ErrExpenseNotOwned)
	assert.Equal(t, "Hotel", store.expenses[0].Title)
}

func TestUpdateExpenseAppliesOnlyProvidedFields(t *testing.T) {
	store := &fakeStore{expenses: []entity.Expense{
		{ID: "1", UserID: "user-1", Title: "Coffee", Amount: decimal.NewFromFloat(4.5), Category: string(entity.CategoryFoodDining), Date: "2024-06-14"},
	}}
	svc, _ := newTestService(store)

	amount := 6.0
	resp, err := svc.UpdateExpense(context.Background(), testUser, "1", expense.UpdateExpenseRequest{
		Amount: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, "Coffee", resp.Title)
	assert.Equal(t, 6.0, resp.Amount)
	assert.Equal(t, string(entity.CategoryFoodDining), resp.Category)
	assert.True(t, store.expenses[0].Amount.Equal(decimal.NewFromInt(6)))
}

func TestDeleteExpensePublishesEvent(t *testing.T) {
	store := &fakeStore{expenses: []entity.Expense{
		{ID: "1", UserID: "user-1", Title: "Coffee", Amount: decimal.NewFromFloat(4.5), Category: string(entity.CategoryFoodDining), Date: "2024-06-14"},
	}}
	svc, b := newTestService(store)

	events, unsubscribe := b.Subscribe(testUser.ID)
	defer unsubscribe()

	require.NoError(t, svc.DeleteExpense(context.Background(), testUser, "1"))
	assert.Empty(t, store.expenses)

	event := <-events
	assert.Equal(t, broker.EventExpenseDeleted, event.Type)
	assert.Equal(t, "1", event.Expense.ID)
}

func TestGetExpenseUnknownID(t *testing.T) {
	svc, _ := newTestService(&fakeStore{})

	_, err := svc.GetExpense(context.Background(), testUser, "missing")
	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
}

func TestExportExpensesWorkbook(t *testing.T) {
	store := &fakeStore{expenses: []entity.Expense{
		{ID: "1", UserID: "user-1", Title: "Coffee", Amount: decimal.NewFromFloat(4.5), Category: string(entity.CategoryFoodDining), Date: "2024-06-14"},
		{ID: "2", UserID: "user-1", Title: "Bus", Amount: decimal.NewFromInt(2), Category: string(entity.CategoryTransportation), Date: "2024-06-13"},
	}}
	svc, _ := newTestService(store)

	workbook, filename, err := svc.ExportExpenses(context.Background(), testUser, entity.ExpenseFilter{})
	require.NoError(t, err)
	assert.Regexp(t, `^expenses_\d{4}-\d{2}-\d{2}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	// Header plus one row per record.
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Category", "Title", "Amount"}, rows[0])
	assert.Equal(t, "Coffee", rows[1][2])
}
