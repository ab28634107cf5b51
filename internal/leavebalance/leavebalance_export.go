package leavebalance

import (
	"context"
	"fmt"
	"io"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Balances"

var exportHeader = []string{
	"Employee No", "Employee", "Leave Type", "Year", "Allocated", "Used", "Remaining", "Source",
}

func (s *service) ExportXLSX(ctx context.Context, companyID string, year int, w io.Writer) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return leavebalanceerrors.ErrInvalidCompanyID
	}
	if !validYear(year) {
		return leavebalanceerrors.ErrInvalidYear
	}

	rows, err := s.repo.FindExportRows(ctx, companyID, year)
	if err != nil {
		s.logger.Error("load export rows failed", zap.Int("year", year), zap.Error(err))
		return err
	}

	f, err := buildWorkbook(rows)
	if err != nil {
		s.logger.Error("build balance workbook failed", zap.Error(err))
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		s.logger.Error("write balance workbook failed", zap.Error(err))
		return err
	}
	s.logger.Info("leave balances exported", zap.Int("year", year), zap.Int("rows", len(rows)))
	return nil
}

func buildWorkbook(rows []ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(exportSheet, "A", "A", 14)
	f.SetColWidth(exportSheet, "B", "C", 28)
	f.SetColWidth(exportSheet, "D", "H", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, h := range exportHeader {
		f.SetCellValue(exportSheet, cell(i, 1), h)
	}
	f.SetCellStyle(exportSheet, cell(0, 1), cell(len(exportHeader)-1, 1), headerStyle)

	for i, r := range rows {
		row := i + 2
		b := LeaveBalance{AllocatedDays: r.AllocatedDays, UsedDays: r.UsedDays}
		values := []any{
			r.EmployeeNumber,
			r.EmployeeName,
			r.LeaveTypeName,
			r.Year,
			r.AllocatedDays.InexactFloat64(),
			r.UsedDays.InexactFloat64(),
			b.RemainingDays().InexactFloat64(),
			r.Source,
		}
		for col, v := range values {
			f.SetCellValue(exportSheet, cell(col, row), v)
		}
	}
	return f, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func ExportFilename(year int) string {
	return fmt.Sprintf("leave_balances_%d.xlsx", year)
}
