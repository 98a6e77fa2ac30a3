package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"workforce/internal/domain/core"
)

const (
	WindowDays       = 30
	RecentHiresLimit = 5
)

var hundred = decimal.NewFromInt(100)

// BuildDepartmentAnalytics keeps the order of rows.
func BuildDepartmentAnalytics(rows []DepartmentTotals) []DepartmentAnalytics {
	out := make([]DepartmentAnalytics, 0, len(rows))
	for _, row := range rows {
		avg := decimal.Zero
		if row.EmployeeCount > 0 {
			avg = row.TotalSalary.Div(decimal.NewFromInt(int64(row.EmployeeCount))).Round(2)
		}
		utilization := decimal.Zero
		if row.Budget.IsPositive() {
			utilization = row.TotalSalary.Div(row.Budget).Mul(hundred).Round(2)
		}
		out = append(out, DepartmentAnalytics{
			DepartmentID:      row.DepartmentID,
			Department:        row.Name,
			EmployeeCount:     row.EmployeeCount,
			AvgSalary:         core.NewAmount(avg),
			TotalSalary:       core.NewAmount(row.TotalSalary),
			TotalBudget:       core.NewAmount(row.Budget),
			BudgetUtilization: core.NewAmount(utilization),
		})
	}
	return out
}

// AttendanceWindow returns the inclusive date range ending at today.
func AttendanceWindow(today core.Date) (core.Date, core.Date) {
	return today.AddDays(-WindowDays), today
}

// BuildAttendanceAnalytics drops rows outside [from, to] and sorts by date ascending.
func BuildAttendanceAnalytics(from, to core.Date, rows []DailyStatusCounts) []AttendanceAnalytics {
	out := make([]AttendanceAnalytics, 0, len(rows))
	for _, row := range rows {
		if row.Date.Before(from.Time) || row.Date.After(to.Time) {
			continue
		}
		rate := decimal.Zero
		if row.Total > 0 {
			rate = decimal.NewFromInt(int64(row.Present)).
				Div(decimal.NewFromInt(int64(row.Total))).
				Mul(hundred).
				Round(2)
		}
		out = append(out, AttendanceAnalytics{
			Date:           row.Date,
			PresentCount:   row.Present,
			AbsentCount:    row.Absent,
			LateCount:      row.Late,
			TotalCount:     row.Total,
			AttendanceRate: core.NewAmount(rate),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out
}
