package assistantService

import (
	"context"

	"budgefy/internal/api/assistant"
	expenseService "budgefy/internal/api/expense/service"
	"budgefy/internal/entity"
	"budgefy/pkg/gemini"

	"github.com/sirupsen/logrus"
)

type AssistantService interface {
	Chat(c context.Context, user entity.UserLoginData, req assistant.ChatRequest) (assistant.ChatResponse, error)
}

type assistantService struct {
	log            *logrus.Logger
	geminiClient   gemini.IGemini
	expenseService expenseService.ExpenseService
}

func New(log *logrus.Logger,
	geminiClient gemini.IGemini,
	es expenseService.ExpenseService,
) AssistantService {
	return &assistantService{
		log:            log,
		geminiClient:   geminiClient,
		expenseService: es,
	}
}
