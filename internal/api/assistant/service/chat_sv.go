package assistantService

import (
	"context"
	"fmt"

	"budgefy/internal/api/assistant"
	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"

	"github.com/sirupsen/logrus"
)

const unavailableReply = "Sorry, I could not get a response. Please try again in a moment."

func (s *assistantService) Chat(c context.Context, user entity.UserLoginData, req assistant.ChatRequest) (assistant.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	latest, err := latestUserMessage(req.Messages)
	if err != nil {
		return assistant.ChatResponse{}, err
	}

	expenses, err := s.expenseService.GetUserExpenses(c, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load expenses for chat context")
		return assistant.ChatResponse{}, err
	}

	prompt := buildPrompt(expenses, latest)

	reply, err := s.geminiClient.GenerateText(c, prompt)
	if err != nil {
		// The turn fails closed: the caller keeps its history and the
		// user sees a generic error reply instead of a dropped message.
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Generative service call failed")
		return assistant.ChatResponse{Reply: unavailableReply}, nil
	}

	intent, found := parseIntent(reply)
	if !found {
		return assistant.ChatResponse{Reply: reply}, nil
	}

	if intent == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Detected add_expense payload could not be decoded")
		return assistant.ChatResponse{Reply: clarificationReply(nil)}, nil
	}

	if problems := validateIntent(intent); len(problems) > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"problems":   problems,
		}).Warn("Rejected add_expense payload")
		return assistant.ChatResponse{Reply: clarificationReply(problems)}, nil
	}

	created, err := s.expenseService.CreateExpense(c, user, expense.CreateExpenseRequest{
		Title:    intent.Title,
		Amount:   intent.Amount,
		Category: intent.Category,
		Date:     intent.Date,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create expense from chat intent")
		return assistant.ChatResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": created.ID,
		"user_id":    user.ID,
	}).Info("Expense created from chat intent")

	confirmation := fmt.Sprintf("Got it! I added %q for %.2f under %s on %s.",
		created.Title, created.Amount, created.Category, created.Date)

	return assistant.ChatResponse{
		Reply:          confirmation,
		Intent:         intent,
		CreatedExpense: &created,
	}, nil
}

func latestUserMessage(messages []entity.ChatMessage) (string, error) {
	for i := range messages {
		if !entity.IsValidChatRole(messages[i].Role) {
			return "", assistant.ErrInvalidChatRole
		}
	}

	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == string(entity.ChatRoleUser) && messages[i].Content != "" {
			return messages[i].Content, nil
		}
	}

	return "", assistant.ErrEmptyMessage
}
