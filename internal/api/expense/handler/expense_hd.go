package expenseHandler

import (
	"strings"
	"time"

	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"
	"budgefy/pkg/handlerUtil"
	jwtPkg "budgefy/pkg/jwt"
	"budgefy/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/net/context"
)

func (h *ExpenseHandler) HandleCreateExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing expense creation request")

	var req expense.CreateExpenseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.expenseService.CreateExpense(c, userData, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}

func (h *ExpenseHandler) HandleGetExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.expenseService.GetExpense(c, userData, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ExpenseHandler) HandleListExpenses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	filter, err := parseExpenseFilter(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_filter")
	}

	res, err := h.expenseService.ListExpenses(c, userData, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_expenses")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ExpenseHandler) HandleUpdateExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req expense.UpdateExpenseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.expenseService.UpdateExpense(c, userData, ctx.Params("id"), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ExpenseHandler) HandleDeleteExpense(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.expenseService.DeleteExpense(c, userData, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_expense")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, nil)
	}
}

// parseExpenseFilter reads filter constraints from query parameters.
// Every parameter is optional; categories is comma separated.
func parseExpenseFilter(ctx *fiber.Ctx) (entity.ExpenseFilter, error) {
	filter := entity.ExpenseFilter{
		SearchTerm: ctx.Query("search"),
	}

	if categories := ctx.Query("categories"); categories != "" {
		for _, category := range strings.Split(categories, ",") {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			if !entity.IsValidExpenseCategory(category) {
				return entity.ExpenseFilter{}, expense.ErrInvalidCategory
			}
			filter.Categories = append(filter.Categories, category)
		}
	}

	if dateFrom := ctx.Query("date_from"); dateFrom != "" {
		t, err := time.Parse(entity.ExpenseDateLayout, dateFrom)
		if err != nil {
			return entity.ExpenseFilter{}, expense.ErrInvalidFilter
		}
		filter.DateFrom = &t
	}

	if dateTo := ctx.Query("date_to"); dateTo != "" {
		t, err := time.Parse(entity.ExpenseDateLayout, dateTo)
		if err != nil {
			return entity.ExpenseFilter{}, expense.ErrInvalidFilter
		}
		filter.DateTo = &t
	}

	if amountMin := ctx.Query("amount_min"); amountMin != "" {
		d, err := decimal.NewFromString(amountMin)
		if err != nil {
			return entity.ExpenseFilter{}, expense.ErrInvalidFilter
		}
		filter.AmountMin = &d
	}

	if amountMax := ctx.Query("amount_max"); amountMax != "" {
		d, err := decimal.NewFromString(amountMax)
		if err != nil {
			return entity.ExpenseFilter{}, expense.ErrInvalidFilter
		}
		filter.AmountMax = &d
	}

	return filter, nil
}
