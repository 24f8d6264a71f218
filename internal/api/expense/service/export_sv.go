package expenseService

import (
	"context"
	"fmt"
	"time"

	"budgefy/internal/api/expense"
	"budgefy/internal/entity"
	contextPkg "budgefy/pkg/context"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Expenses"

var exportHeaders = []string{"Date", "Category", "Title", "Amount"}

// ExportExpenses renders the filtered record set as an xlsx workbook.
// Rows follow the listing order, newest date first.
func (s *expenseService) ExportExpenses(c context.Context, user entity.UserLoginData, filter entity.ExpenseFilter) ([]byte, string, error) {
	requestID := contextPkg.GetRequestID(c)

	expenses, err := s.GetUserExpenses(c, user.ID)
	if err != nil {
		return nil, "", err
	}

	filtered := filter.Apply(expenses)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create export sheet")
		return nil, "", expense.ErrExportExpenses
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", expense.ErrExportExpenses
		}
		if err := f.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, "", expense.ErrExportExpenses
		}
	}

	for i, exp := range filtered {
		row := i + 2
		values := []interface{}{
			exp.Date,
			exp.Category,
			exp.Title,
			exp.Amount.InexactFloat64(),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", expense.ErrExportExpenses
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, "", expense.ErrExportExpenses
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to write export workbook")
		return nil, "", expense.ErrExportExpenses
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format(entity.ExpenseDateLayout))

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"rows":       len(filtered),
	}).Info("Expenses exported")

	return buf.Bytes(), filename, nil
}
