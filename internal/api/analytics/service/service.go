package analyticsService

import (
	"context"
	"time"

	"budgefy/internal/api/analytics"
	expenseRepository "budgefy/internal/api/expense/repository"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"

	"github.com/sirupsen/logrus"
)

type AnalyticsService interface {
	CategoryTotals(c context.Context, user entity.UserLoginData) ([]analytics.CategoryTotalResponse, error)
	MonthlySeries(c context.Context, user entity.UserLoginData) ([]analytics.SeriesBucketResponse, error)
	DailySeries(c context.Context, user entity.UserLoginData) ([]analytics.SeriesBucketResponse, error)
	Insights(c context.Context, user entity.UserLoginData) (analytics.InsightsResponse, error)
}

type analyticsService struct {
	log         *logrus.Logger
	expenseRepo expenseRepository.Repository
}

func New(log *logrus.Logger, expenseRepo expenseRepository.Repository) AnalyticsService {
	return &analyticsService{
		log:         log,
		expenseRepo: expenseRepo,
	}
}

func (s *analyticsService) CategoryTotals(c context.Context, user entity.UserLoginData) ([]analytics.CategoryTotalResponse, error) {
	records, err := s.loadRecords(c, user.ID)
	if err != nil {
		return nil, err
	}

	totals := CategoryTotals(records)
	responses := make([]analytics.CategoryTotalResponse, 0, len(totals))
	for _, t := range totals {
		responses = append(responses, analytics.CategoryTotalResponse{
			Category: t.Category,
			Total:    t.Total.Round(2).InexactFloat64(),
			Count:    t.Count,
		})
	}

	return responses, nil
}

func (s *analyticsService) MonthlySeries(c context.Context, user entity.UserLoginData) ([]analytics.SeriesBucketResponse, error) {
	records, err := s.loadRecords(c, user.ID)
	if err != nil {
		return nil, err
	}

	return makeSeriesResponses(MonthlySeries(records, time.Now())), nil
}

func (s *analyticsService) DailySeries(c context.Context, user entity.UserLoginData) ([]analytics.SeriesBucketResponse, error) {
	records, err := s.loadRecords(c, user.ID)
	if err != nil {
		return nil, err
	}

	return makeSeriesResponses(DailySeries(records, time.Now())), nil
}

func (s *analyticsService) Insights(c context.Context, user entity.UserLoginData) (analytics.InsightsResponse, error) {
	records, err := s.loadRecords(c, user.ID)
	if err != nil {
		return analytics.InsightsResponse{}, err
	}

	insights := ComputeInsights(records, time.Now())

	res := analytics.InsightsResponse{
		PercentChange:         insights.PercentChange.Round(2).InexactFloat64(),
		TopCategory:           insights.TopCategory,
		AveragePerExpense:     insights.AveragePerExpense.Round(2).InexactFloat64(),
		DistinctCategoryCount: insights.DistinctCategoryCount,
		ThisWeekTotal:         insights.ThisWeekTotal.Round(2).InexactFloat64(),
		ThisWeekCount:         insights.ThisWeekCount,
	}

	if insights.LargestExpense != nil {
		res.LargestExpense = &analytics.LargestExpenseResponse{
			ID:       insights.LargestExpense.ID,
			Title:    insights.LargestExpense.Title,
			Amount:   insights.LargestExpense.Amount.Round(2).InexactFloat64(),
			Category: insights.LargestExpense.Category,
			Date:     insights.LargestExpense.Date,
		}
	}

	return res, nil
}

func (s *analyticsService) loadRecords(c context.Context, userID string) ([]entity.Expense, error) {
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

func makeSeriesResponses(buckets []SeriesBucket) []analytics.SeriesBucketResponse {
	responses := make([]analytics.SeriesBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		responses = append(responses, analytics.SeriesBucketResponse{
			Label:   b.Label,
			Total:   b.Total.Round(2).InexactFloat64(),
			Count:   b.Count,
			Average: b.Average.Round(2).InexactFloat64(),
		})
	}
	return responses
}
