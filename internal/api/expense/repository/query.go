package expenseRepository

const (
	queryCreateExpense = `
INSERT INTO expenses (id, user_id, title, amount, category, date, created_at)
VALUES (:id, :user_id, :title, :amount, :category, :date, :created_at)`

	queryGetByID = `
SELECT id, user_id, title, amount, category, date, created_at, updated_at
FROM expenses
    WHERE id = :id`

	queryListByUser = `
SELECT id, user_id, title, amount, category, date, created_at, updated_at
FROM expenses
    WHERE user_id = :user_id
ORDER BY date DESC, created_at DESC`

	queryUpdateExpense = `
UPDATE expenses
SET title = :title,
    amount = :amount,
    category = :category,
    date = :date,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteExpense = `
DELETE FROM expenses
WHERE id = :id`
)
