package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) worktime.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, company_id, employee_id, date, clock_in, clock_out,
	break_minutes, source, validated, created_at, updated_at
`

func scanAttendance(row pgx.Row) (worktime.AttendanceRecord, error) {
	var rec worktime.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.BreakMinutes, &rec.Source, &rec.Validated, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements worktime.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, rec worktime.AttendanceRecord) (worktime.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, company_id, employee_id, date, clock_in, clock_out,
			break_minutes, source, validated
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.CompanyID,
		rec.EmployeeID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.BreakMinutes,
		rec.Source,
		rec.Validated,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return worktime.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements worktime.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (worktime.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE id = $1 AND company_id = $2
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worktime.AttendanceRecord{}, worktime.ErrAttendanceNotFound
		}
		return worktime.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// ListByEmployeeRange implements worktime.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]worktime.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE company_id = $1 AND employee_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date, clock_in
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByCompanyRange implements worktime.AttendanceRepository.
func (r *attendanceRepository) ListByCompanyRange(ctx context.Context, companyID string, from, to time.Time) ([]worktime.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE company_id = $1
		  AND date >= $2 AND date <= $3
		ORDER BY employee_id, date, clock_in
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]worktime.AttendanceRecord, error) {
	var records []worktime.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
