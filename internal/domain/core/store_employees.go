package core

import "context"

const employeeColumns = `
    SELECT e.id::text, e.first_name, e.last_name, e.email, e.phone, e.hire_date, e.job_title, e.salary,
           e.department_id::text, d.name, e.employment_type, e.manager_id::text,
           CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END,
           e.date_of_birth, e.address, e.created_at
    FROM employees e
    JOIN departments d ON d.id = e.department_id
    LEFT JOIN employees m ON m.id = e.manager_id`

func scanEmployee(row interface{ Scan(dest ...any) error }) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.HireDate, &emp.JobTitle, &emp.Salary,
		&emp.DepartmentID, &emp.DepartmentName, &emp.EmploymentType, &emp.ManagerID,
		&emp.ManagerName, &emp.DateOfBirth, &emp.Address, &emp.CreatedAt,
	)
	return emp, err
}

func (s *Store) queryEmployees(ctx context.Context, sql string, args ...any) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error) {
	where := filter.where()
	return s.queryEmployees(ctx, employeeColumns+where.sql()+" ORDER BY e.created_at, e.id", where.args...)
}

// ties keep insertion order
func (s *Store) ListRecentHires(ctx context.Context, limit int) ([]Employee, error) {
	return s.queryEmployees(ctx, employeeColumns+" ORDER BY e.hire_date DESC, e.created_at, e.id LIMIT $1", limit)
}

func (s *Store) GetEmployee(ctx context.Context, id string) (Employee, error) {
	if !validID(id) {
		return Employee{}, notFound("employee")
	}
	emp, err := scanEmployee(s.DB.QueryRow(ctx, employeeColumns+" WHERE e.id = $1", id))
	if err != nil {
		return Employee{}, translateError(err, "employee")
	}
	return emp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, email, phone, hire_date, job_title, salary,
      department_id, employment_type, manager_id, date_of_birth, address)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id::text
  `,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.HireDate, emp.JobTitle, emp.Salary,
		emp.DepartmentID, emp.EmploymentType, emp.ManagerID, emp.DateOfBirth, emp.Address,
	).Scan(&id)
	if err != nil {
		return "", translateError(err, "employee")
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, emp Employee) error {
	if !validID(id) {
		return notFound("employee")
	}
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        phone = $4,
        hire_date = $5,
        job_title = $6,
        salary = $7,
        department_id = $8,
        employment_type = $9,
        manager_id = $10,
        date_of_birth = $11,
        address = $12
    WHERE id = $13
  `,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.HireDate, emp.JobTitle, emp.Salary,
		emp.DepartmentID, emp.EmploymentType, emp.ManagerID, emp.DateOfBirth, emp.Address, id,
	)
	if err != nil {
		return translateError(err, "employee")
	}
	if cmd.RowsAffected() == 0 {
		return notFound("employee")
	}
	return nil
}

// DeleteEmployee removes the employee; employees they managed keep a NULL manager.
func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	return deleteByID(ctx, s.DB, "employees", "employee", id)
}

func (s *Store) EmployeeCount(ctx context.Context) (int, error) {
	return countRows(ctx, s.DB, "employees")
}
