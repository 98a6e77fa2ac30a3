package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"workforce/internal/domain/analytics"
)

const attendanceSheet = "Attendance"

var departmentColumns = []struct {
	title string
	width float64
}{
	{"Department", 60},
	{"Employees", 22},
	{"Avg salary", 28},
	{"Total salary", 28},
	{"Budget", 28},
	{"Utilization %", 24},
}

// DepartmentAnalyticsPDF renders rows as a single-table A4 report.
func DepartmentAnalyticsPDF(rows []analytics.DepartmentAnalytics, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Department analytics", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Department analytics")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format(time.RFC3339))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range departmentColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	for _, row := range rows {
		for i, value := range departmentRowValues(row, translate) {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(departmentColumns[i].width, 6, value, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(rows) == 0 {
		pdf.Cell(0, 6, "No departments.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render department pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// departmentRowValues converts UTF-8 text to the cp1252 encoding of the core fonts.
func departmentRowValues(row analytics.DepartmentAnalytics, translate func(string) string) []string {
	return []string{
		translate(row.Department),
		fmt.Sprintf("%d", row.EmployeeCount),
		row.AvgSalary.String(),
		row.TotalSalary.String(),
		row.TotalBudget.String(),
		row.BudgetUtilization.String(),
	}
}

// AttendanceAnalyticsXLSX writes one sheet with a header row and one row per date.
func AttendanceAnalyticsXLSX(rows []analytics.AttendanceAnalytics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Date", "Present", "Absent", "Late", "Total", "Attendance rate %"}
	if err := f.SetSheetRow(attendanceSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		rate, _ := row.AttendanceRate.Float64()
		values := []any{row.Date.String(), row.PresentCount, row.AbsentCount, row.LateCount, row.TotalCount, rate}
		if err := f.SetSheetRow(attendanceSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(attendanceSheet, "A", "A", 14); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render attendance xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
