package assistantService

import (
	"testing"

	"budgefy/internal/api/assistant"
	"budgefy/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntentBareJSON(t *testing.T) {
	reply := `{"add_expense": {"title": "Coffee", "amount": 4.5, "category": "Food & Dining", "date": "2024-06-14"}}`

	intent, found := parseIntent(reply)
	require.True(t, found)
	require.NotNil(t, intent)
	assert.Equal(t, "Coffee", intent.Title)
	assert.Equal(t, 4.5, intent.Amount)
	assert.Equal(t, "Food & Dining", intent.Category)
	assert.Equal(t, "2024-06-14", intent.Date)
}

func TestParseIntentInsideCodeFence(t *testing.T) {
	reply := "Here you go!\n```json\n{\"add_expense\": {\"title\": \"Bus ticket\", \"amount\": 2, \"category\": \"Transportation\", \"date\": \"2024-06-13\"}}\n```\nAnything else?"

	intent, found := parseIntent(reply)
	require.True(t, found)
	require.NotNil(t, intent)
	assert.Equal(t, "Bus ticket", intent.Title)
}

func TestParseIntentBracesInsideStrings(t *testing.T) {
	reply := `{"add_expense": {"title": "Pizza {large}", "amount": 18, "category": "Food & Dining", "date": "2024-06-10"}}`

	intent, found := parseIntent(reply)
	require.True(t, found)
	require.NotNil(t, intent)
	assert.Equal(t, "Pizza {large}", intent.Title)
}

func TestParseIntentPlainTextReply(t *testing.T) {
	intent, found := parseIntent("You spent the most on Food & Dining this month.")
	assert.False(t, found)
	assert.Nil(t, intent)
}

func TestParseIntentMentionedButUndecodable(t *testing.T) {
	intent, found := parseIntent(`I would call add_expense here but {"oops": true}`)
	assert.True(t, found)
	assert.Nil(t, intent)
}

func TestValidateIntentAccepts(t *testing.T) {
	intent := &assistant.ExpenseIntent{
		Title:    "Coffee",
		Amount:   4.5,
		Category: string(entity.CategoryFoodDining),
		Date:     "2024-06-14",
	}
	assert.Empty(t, validateIntent(intent))
}

func TestValidateIntentCollectsProblems(t *testing.T) {
	intent := &assistant.ExpenseIntent{
		Title:    "",
		Amount:   -1,
		Category: "Groceries",
		Date:     "June 14th",
	}
	assert.Equal(t, []string{"title", "amount", "category", "date"}, validateIntent(intent))
}

func TestValidateIntentRejectsUnknownCategory(t *testing.T) {
	intent := &assistant.ExpenseIntent{
		Title:    "Milk",
		Amount:   3,
		Category: "Groceries",
		Date:     "2024-06-14",
	}
	assert.Equal(t, []string{"category"}, validateIntent(intent))
}

func TestClarificationReply(t *testing.T) {
	assert.Contains(t, clarificationReply(nil), "more detail")
	assert.Contains(t, clarificationReply([]string{"amount"}), "valid amount")
	assert.Contains(t, clarificationReply([]string{"amount", "date"}), "amount and date")
	assert.Contains(t, clarificationReply([]string{"title", "amount", "date"}), "title, amount, and date")
}
