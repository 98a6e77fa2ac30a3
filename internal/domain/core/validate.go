package core

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"workforce/internal/apperror"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type issueSet struct {
	issues []apperror.FieldIssue
}

func (s *issueSet) add(field, reason string) {
	s.issues = append(s.issues, apperror.FieldIssue{Field: field, Reason: reason})
}

func (s *issueSet) checkTags(value any) {
	err := structValidator.Struct(value)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		s.add("", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		s.add(fe.Field(), tagReason(fe))
	}
}

func tagReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "uuid":
		return "must be a valid id"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "ensure this field has no more than " + fe.Param() + " characters"
		}
		return "ensure this value is less than or equal to " + fe.Param()
	case "min":
		return "ensure this value is greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func (s *issueSet) requireDate(field string, d Date) {
	if d.IsZero() {
		s.add(field, "this field is required")
	}
}

func (s *issueSet) requireAmount(field string, a Amount, digits, places int32) {
	if !a.IsSet() {
		s.add(field, "this field is required")
		return
	}
	s.checkAmount(field, a, digits, places)
}

func (s *issueSet) checkAmount(field string, a Amount, digits, places int32) {
	if a.IsNegative() {
		s.add(field, "ensure this value is greater than or equal to 0")
		return
	}
	if !a.Equal(a.Round(places)) {
		s.add(field, fmt.Sprintf("ensure there are no more than %d decimal places", places))
		return
	}
	limit := decimal.New(1, digits-places)
	if a.Abs().GreaterThanOrEqual(limit) {
		s.add(field, fmt.Sprintf("ensure there are no more than %d digits in total", digits))
	}
}

func (s *issueSet) err(message string) error {
	if len(s.issues) == 0 {
		return nil
	}
	out := make([]apperror.FieldIssue, len(s.issues))
	copy(out, s.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return apperror.Validation(message, out...)
}

func ValidateDepartment(dep *Department) error {
	dep.Name = strings.TrimSpace(dep.Name)
	dep.Location = strings.TrimSpace(dep.Location)
	dep.HeadOfDepartment = strings.TrimSpace(dep.HeadOfDepartment)
	dep.Email = strings.TrimSpace(dep.Email)

	var issues issueSet
	issues.checkTags(dep)
	issues.requireDate("established_date", dep.EstablishedDate)
	issues.requireAmount("budget", dep.Budget, 12, 2)
	return issues.err("invalid department")
}

func ValidateEmployee(emp *Employee) error {
	emp.FirstName = strings.TrimSpace(emp.FirstName)
	emp.LastName = strings.TrimSpace(emp.LastName)
	emp.Email = strings.TrimSpace(emp.Email)
	emp.Phone = strings.TrimSpace(emp.Phone)
	emp.JobTitle = strings.TrimSpace(emp.JobTitle)
	if emp.EmploymentType == "" {
		emp.EmploymentType = EmploymentFullTime
	}
	if emp.ManagerID != nil && strings.TrimSpace(*emp.ManagerID) == "" {
		emp.ManagerID = nil
	}
	if emp.DateOfBirth != nil && emp.DateOfBirth.IsZero() {
		emp.DateOfBirth = nil
	}

	var issues issueSet
	issues.checkTags(emp)
	issues.requireDate("hire_date", emp.HireDate)
	issues.requireAmount("salary", emp.Salary, 10, 2)
	return issues.err("invalid employee")
}

func ValidateAttendance(att *Attendance) error {
	var issues issueSet
	issues.checkTags(att)
	issues.requireDate("date", att.Date)

	att.CheckIn = normalizeClockField(&issues, "check_in", att.CheckIn)
	att.CheckOut = normalizeClockField(&issues, "check_out", att.CheckOut)
	if att.HoursWorked != nil {
		issues.checkAmount("hours_worked", *att.HoursWorked, 4, 2)
	}
	issues.checkAmount("overtime_hours", att.OvertimeHours, 4, 2)
	return issues.err("invalid attendance record")
}

func normalizeClockField(issues *issueSet, field string, value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	normalized, err := normalizeClock(*value)
	if err != nil {
		issues.add(field, "must be a time in HH:MM or HH:MM:SS format")
		return value
	}
	return &normalized
}

func ValidatePerformanceReview(review *PerformanceReview) error {
	review.Reviewer = strings.TrimSpace(review.Reviewer)
	if review.NextReviewDate != nil && review.NextReviewDate.IsZero() {
		review.NextReviewDate = nil
	}

	var issues issueSet
	issues.checkTags(review)
	issues.requireDate("review_date", review.ReviewDate)
	return issues.err("invalid performance review")
}
