package expenseHandler

import (
	"time"

	contextPkg "budgefy/pkg/context"
	"budgefy/pkg/handlerUtil"
	jwtPkg "budgefy/pkg/jwt"
	"budgefy/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *ExpenseHandler) HandleExportExpenses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing expense export request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	filter, err := parseExpenseFilter(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_filter")
	}

	workbook, filename, err := h.expenseService.ExportExpenses(c, userData, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_expenses")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, xlsxContentType)
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return ctx.Send(workbook)
	}
}
