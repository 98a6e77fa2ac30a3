package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"workforce/internal/domain/core"
)

func TestBuildDepartmentAnalytics(t *testing.T) {
	rows := []DepartmentTotals{
		{Name: "Engineering", EmployeeCount: 2, TotalSalary: decimal.NewFromInt(500), Budget: decimal.NewFromInt(1000)},
		{Name: "Research", EmployeeCount: 1, TotalSalary: decimal.NewFromInt(300), Budget: decimal.Zero},
		{Name: "Empty", Budget: decimal.NewFromInt(50)},
	}

	got := BuildDepartmentAnalytics(rows)
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}

	eng := got[0]
	if eng.Department != "Engineering" || eng.AvgSalary.String() != "250.00" ||
		eng.TotalSalary.String() != "500.00" || eng.BudgetUtilization.String() != "50.00" {
		t.Fatalf("unexpected engineering row %+v", eng)
	}
	if got[1].BudgetUtilization.String() != "0.00" {
		t.Fatalf("zero budget should give 0 utilization, got %s", got[1].BudgetUtilization)
	}
	if got[2].AvgSalary.String() != "0.00" || got[2].EmployeeCount != 0 {
		t.Fatalf("empty department should give 0 average, got %+v", got[2])
	}
}

func TestBuildAttendanceAnalytics(t *testing.T) {
	today := core.NewDate(2024, time.June, 30)
	from, to := AttendanceWindow(today)
	if from.String() != "2024-05-31" || to.String() != "2024-06-30" {
		t.Fatalf("unexpected window %s..%s", from, to)
	}

	rows := []DailyStatusCounts{
		{Date: today, Present: 0, Total: 0},
		{Date: from.AddDays(-1), Present: 1, Total: 1},
		{Date: today.AddDays(-3), Present: 2, Absent: 1, Total: 3},
		{Date: from, Present: 1, Late: 1, Total: 2},
		{Date: today.AddDays(1), Present: 1, Total: 1},
	}

	got := BuildAttendanceAnalytics(from, to, rows)
	if len(got) != 3 {
		t.Fatalf("expected rows outside the window to be dropped, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date.Time) {
			t.Fatalf("rows not ascending: %s then %s", got[i-1].Date, got[i].Date)
		}
	}
	if !got[0].Date.Equal(from.Time) || got[0].AttendanceRate.String() != "50.00" {
		t.Fatalf("unexpected first row %+v", got[0])
	}

	mid := got[1]
	if mid.PresentCount != 2 || mid.AbsentCount != 1 || mid.LateCount != 0 || mid.AttendanceRate.String() != "66.67" {
		t.Fatalf("unexpected middle row %+v", mid)
	}
	if got[2].AttendanceRate.String() != "0.00" {
		t.Fatalf("zero total should give 0 rate, got %s", got[2].AttendanceRate)
	}
}

type stubStore struct {
	from, to core.Date
}

func (s *stubStore) DepartmentTotals(context.Context) ([]DepartmentTotals, error) {
	return nil, nil
}

func (s *stubStore) DailyStatusCounts(_ context.Context, from, to core.Date) ([]DailyStatusCounts, error) {
	s.from, s.to = from, to
	return []DailyStatusCounts{{Date: to, Present: 1, Total: 1}}, nil
}

type stubCounts struct {
	day   core.Date
	limit int
	hires []core.Employee
}

func (s *stubCounts) EmployeeCount(context.Context) (int, error)   { return 7, nil }
func (s *stubCounts) DepartmentCount(context.Context) (int, error) { return 2, nil }

func (s *stubCounts) AttendanceCountOn(_ context.Context, day core.Date) (int, error) {
	s.day = day
	return 4, nil
}

func (s *stubCounts) ListRecentHires(_ context.Context, limit int) ([]core.Employee, error) {
	s.limit = limit
	return s.hires, nil
}

func TestServiceUsesLocalToday(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	store := &stubStore{}
	svc := NewService(store, &stubCounts{}, loc)
	svc.Now = func() time.Time { return time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC) }

	rows, err := svc.AttendanceAnalytics(context.Background())
	if err != nil {
		t.Fatalf("attendance analytics: %v", err)
	}
	if store.to.String() != "2024-06-30" || store.from.String() != "2024-05-31" {
		t.Fatalf("unexpected window %s..%s", store.from, store.to)
	}
	if len(rows) != 1 || rows[0].AttendanceRate.String() != "100.00" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestDashboard(t *testing.T) {
	hires := make([]core.Employee, 0, 6)
	for i := 0; i < 6; i++ {
		hires = append(hires, core.Employee{HireDate: core.NewDate(2024, time.June, 10-i)})
	}
	counts := &stubCounts{hires: hires}
	svc := NewService(&stubStore{}, counts, time.UTC)
	svc.Now = func() time.Time { return time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC) }

	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if got.TotalEmployees != 7 || got.TotalDepartments != 2 || got.TodayAttendance != 4 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if counts.limit != RecentHiresLimit || len(got.RecentHires) != RecentHiresLimit {
		t.Fatalf("expected %d recent hires, got %d (limit %d)", RecentHiresLimit, len(got.RecentHires), counts.limit)
	}
	if counts.day.String() != "2024-06-12" {
		t.Fatalf("unexpected today %s", counts.day)
	}
	for i := 1; i < len(got.RecentHires); i++ {
		if got.RecentHires[i].HireDate.After(got.RecentHires[i-1].HireDate.Time) {
			t.Fatal("recent hires not ordered by hire date desc")
		}
	}
}
