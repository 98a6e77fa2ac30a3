package core

import "context"

const departmentColumns = `
    SELECT d.id::text, d.name, d.description, d.location, d.budget, d.established_date,
           d.head_of_department, d.email,
           (SELECT COUNT(1) FROM employees e WHERE e.department_id = d.id),
           d.created_at
    FROM departments d`

func scanDepartment(row interface{ Scan(dest ...any) error }) (Department, error) {
	var dep Department
	err := row.Scan(
		&dep.ID, &dep.Name, &dep.Description, &dep.Location, &dep.Budget, &dep.EstablishedDate,
		&dep.HeadOfDepartment, &dep.Email, &dep.EmployeeCount, &dep.CreatedAt,
	)
	return dep, err
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, departmentColumns+" ORDER BY d.created_at, d.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Department{}
	for rows.Next() {
		dep, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id string) (Department, error) {
	if !validID(id) {
		return Department{}, notFound("department")
	}
	dep, err := scanDepartment(s.DB.QueryRow(ctx, departmentColumns+" WHERE d.id = $1", id))
	if err != nil {
		return Department{}, translateError(err, "department")
	}
	return dep, nil
}

func (s *Store) CreateDepartment(ctx context.Context, dep Department) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, description, location, budget, established_date, head_of_department, email)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id::text
  `, dep.Name, dep.Description, dep.Location, dep.Budget, dep.EstablishedDate, dep.HeadOfDepartment, dep.Email).Scan(&id)
	if err != nil {
		return "", translateError(err, "department")
	}
	return id, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id string, dep Department) error {
	if !validID(id) {
		return notFound("department")
	}
	cmd, err := s.DB.Exec(ctx, `
    UPDATE departments
    SET name = $1,
        description = $2,
        location = $3,
        budget = $4,
        established_date = $5,
        head_of_department = $6,
        email = $7
    WHERE id = $8
  `, dep.Name, dep.Description, dep.Location, dep.Budget, dep.EstablishedDate, dep.HeadOfDepartment, dep.Email, id)
	if err != nil {
		return translateError(err, "department")
	}
	if cmd.RowsAffected() == 0 {
		return notFound("department")
	}
	return nil
}

// DeleteDepartment removes the department and, through the foreign key, its employees.
func (s *Store) DeleteDepartment(ctx context.Context, id string) error {
	return deleteByID(ctx, s.DB, "departments", "department", id)
}

func (s *Store) DepartmentCount(ctx context.Context) (int, error) {
	return countRows(ctx, s.DB, "departments")
}
