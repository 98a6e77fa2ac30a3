package analytics

import (
	"context"

	"workforce/internal/domain/core"
	"workforce/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// DepartmentTotals returns every department, including empty ones, in insertion order.
func (s *Store) DepartmentTotals(ctx context.Context) ([]DepartmentTotals, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.id::text, d.name, COUNT(e.id), COALESCE(SUM(e.salary), 0), d.budget
    FROM departments d
    LEFT JOIN employees e ON e.department_id = d.id
    GROUP BY d.id, d.name, d.budget, d.created_at
    ORDER BY d.created_at, d.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DepartmentTotals{}
	for rows.Next() {
		var row DepartmentTotals
		var total, budget core.Amount
		if err := rows.Scan(&row.DepartmentID, &row.Name, &row.EmployeeCount, &total, &budget); err != nil {
			return nil, err
		}
		row.TotalSalary = total.Decimal
		row.Budget = budget.Decimal
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) DailyStatusCounts(ctx context.Context, from, to core.Date) ([]DailyStatusCounts, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT date,
           COUNT(1) FILTER (WHERE status = $3),
           COUNT(1) FILTER (WHERE status = $4),
           COUNT(1) FILTER (WHERE status = $5),
           COUNT(1)
    FROM attendance
    WHERE date BETWEEN $1 AND $2
    GROUP BY date
    ORDER BY date
  `, from, to, core.AttendancePresent, core.AttendanceAbsent, core.AttendanceLate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DailyStatusCounts{}
	for rows.Next() {
		var row DailyStatusCounts
		if err := rows.Scan(&row.Date, &row.Present, &row.Absent, &row.Late, &row.Total); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
