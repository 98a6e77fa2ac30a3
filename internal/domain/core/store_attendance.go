package core

import "context"

const attendanceColumns = `
    SELECT a.id::text, a.employee_id::text, e.first_name || ' ' || e.last_name, a.date,
           a.check_in::text, a.check_out::text, a.hours_worked, a.status, a.notes,
           a.overtime_hours, a.leave_type, a.created_at
    FROM attendance a
    JOIN employees e ON e.id = a.employee_id`

func scanAttendance(row interface{ Scan(dest ...any) error }) (Attendance, error) {
	var att Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.EmployeeName, &att.Date,
		&att.CheckIn, &att.CheckOut, &att.HoursWorked, &att.Status, &att.Notes,
		&att.OvertimeHours, &att.LeaveType, &att.CreatedAt,
	)
	return att, err
}

func (s *Store) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error) {
	where := filter.where()
	rows, err := s.DB.Query(ctx, attendanceColumns+where.sql()+" ORDER BY a.created_at, a.id", where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

func (s *Store) GetAttendance(ctx context.Context, id string) (Attendance, error) {
	if !validID(id) {
		return Attendance{}, notFound("attendance record")
	}
	att, err := scanAttendance(s.DB.QueryRow(ctx, attendanceColumns+" WHERE a.id = $1", id))
	if err != nil {
		return Attendance{}, translateError(err, "attendance record")
	}
	return att, nil
}

func (s *Store) CreateAttendance(ctx context.Context, att Attendance) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, check_in, check_out, hours_worked, status, notes, overtime_hours, leave_type)
    VALUES ($1,$2,$3::time,$4::time,$5,$6,$7,$8,$9)
    RETURNING id::text
  `,
		att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.HoursWorked, att.Status, att.Notes,
		att.OvertimeHours, att.LeaveType,
	).Scan(&id)
	if err != nil {
		return "", translateError(err, "attendance record")
	}
	return id, nil
}

func (s *Store) UpdateAttendance(ctx context.Context, id string, att Attendance) error {
	if !validID(id) {
		return notFound("attendance record")
	}
	cmd, err := s.DB.Exec(ctx, `
    UPDATE attendance
    SET employee_id = $1,
        date = $2,
        check_in = $3::time,
        check_out = $4::time,
        hours_worked = $5,
        status = $6,
        notes = $7,
        overtime_hours = $8,
        leave_type = $9
    WHERE id = $10
  `,
		att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.HoursWorked, att.Status, att.Notes,
		att.OvertimeHours, att.LeaveType, id,
	)
	if err != nil {
		return translateError(err, "attendance record")
	}
	if cmd.RowsAffected() == 0 {
		return notFound("attendance record")
	}
	return nil
}

func (s *Store) DeleteAttendance(ctx context.Context, id string) error {
	return deleteByID(ctx, s.DB, "attendance", "attendance record", id)
}

func (s *Store) AttendanceCountOn(ctx context.Context, day Date) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM attendance WHERE date = $1", day).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
