package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type EmployeeFilter struct {
	Department     string
	EmploymentType string
}

type AttendanceFilter struct {
	Employee string
	Date     *Date
	Status   string
}

type ReviewFilter struct {
	Employee  string
	MinRating *int
}

func ParseEmployeeFilter(values url.Values) (EmployeeFilter, error) {
	return EmployeeFilter{
		Department:     strings.TrimSpace(values.Get("department")),
		EmploymentType: strings.TrimSpace(values.Get("employment_type")),
	}, nil
}

func ParseAttendanceFilter(values url.Values) (AttendanceFilter, error) {
	filter := AttendanceFilter{
		Employee: strings.TrimSpace(values.Get("employee")),
		Status:   strings.TrimSpace(values.Get("status")),
	}
	if raw := strings.TrimSpace(values.Get("date")); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			return AttendanceFilter{}, fmt.Errorf("date filter: %w", err)
		}
		filter.Date = &parsed
	}
	return filter, nil
}

func ParseReviewFilter(values url.Values) (ReviewFilter, error) {
	filter := ReviewFilter{
		Employee: strings.TrimSpace(values.Get("employee")),
	}
	if raw := strings.TrimSpace(values.Get("min_rating")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ReviewFilter{}, fmt.Errorf("min_rating filter: invalid literal %q for an integer", raw)
		}
		filter.MinRating = &parsed
	}
	return filter, nil
}

type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) arg(value any) string {
	w.args = append(w.args, value)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) contains(column, value string) {
	w.add(column + " ILIKE '%' || " + w.arg(escapeLike(value)) + " || '%'")
}

func (w *whereBuilder) equals(column string, value any) {
	w.add(column + " = " + w.arg(value))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (f EmployeeFilter) where() *whereBuilder {
	w := &whereBuilder{}
	if f.Department != "" {
		w.contains("d.name", f.Department)
	}
	if f.EmploymentType != "" {
		w.equals("e.employment_type", f.EmploymentType)
	}
	return w
}

func (f AttendanceFilter) where() *whereBuilder {
	w := &whereBuilder{}
	if f.Employee != "" {
		w.contains("e.last_name", f.Employee)
	}
	if f.Date != nil {
		w.equals("a.date", *f.Date)
	}
	if f.Status != "" {
		w.equals("a.status", f.Status)
	}
	return w
}

func (f ReviewFilter) where() *whereBuilder {
	w := &whereBuilder{}
	if f.Employee != "" {
		w.contains("e.last_name", f.Employee)
	}
	if f.MinRating != nil {
		w.add("r.rating >= " + w.arg(*f.MinRating) + "::bigint")
	}
	return w
}
