package core

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"workforce/internal/apperror"
	"workforce/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(entity string) error {
	return apperror.NotFound(entity + " not found")
}

var uniqueViolations = map[string]apperror.FieldIssue{
	"employees_email_key":             {Field: "email", Reason: "employee with this email already exists"},
	"attendance_employee_id_date_key": {Field: "date", Reason: "attendance for this employee and date already exists"},
}

var foreignKeyViolations = map[string]apperror.FieldIssue{
	"employees_department_id_fkey":         {Field: "department", Reason: "department does not exist"},
	"employees_manager_id_fkey":            {Field: "manager", Reason: "manager does not exist"},
	"attendance_employee_id_fkey":          {Field: "employee", Reason: "employee does not exist"},
	"performance_reviews_employee_id_fkey": {Field: "employee", Reason: "employee does not exist"},
}

func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(entity)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		issue, ok := uniqueViolations[pgErr.ConstraintName]
		if !ok {
			issue = apperror.FieldIssue{Reason: "duplicate " + entity}
		}
		return &apperror.Error{Code: apperror.CodeConflict, Message: issue.Reason, Fields: []apperror.FieldIssue{issue}, Err: err}
	case "23503":
		issue, ok := foreignKeyViolations[pgErr.ConstraintName]
		if !ok {
			issue = apperror.FieldIssue{Reason: "referenced record does not exist"}
		}
		return &apperror.Error{Code: apperror.CodeValidation, Message: issue.Reason, Fields: []apperror.FieldIssue{issue}, Err: err}
	case "23514", "22003":
		return apperror.Wrap(apperror.CodeValidation, "invalid "+entity+": "+pgErr.Message, err)
	}
	return err
}

func deleteByID(ctx context.Context, db querier.Querier, table, entity, id string) error {
	if !validID(id) {
		return notFound(entity)
	}
	cmd, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return translateError(err, entity)
	}
	if cmd.RowsAffected() == 0 {
		return notFound(entity)
	}
	return nil
}

func countRows(ctx context.Context, db querier.Querier, table string) (int, error) {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(1) FROM "+table).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
