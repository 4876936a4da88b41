package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/issouftoure58-design/nexus-sub008/internal/domain/worktime"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) worktime.HolidayRepository {
	return &holidayRepository{db: db}
}

// LoadCalendar implements worktime.HolidayRepository. Coverage is tracked per
// year: a year with zero holiday rows but a coverage row still counts as
// covered, while a year never loaded reports missing calendar data.
func (r *holidayRepository) LoadCalendar(ctx context.Context, companyID string, years []int) (*worktime.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	coverageQuery := `
		SELECT year
		FROM holiday_calendar_years
		WHERE company_id = $1 AND year = ANY($2)
	`

	rows, err := q.Query(ctx, coverageQuery, companyID, years)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar coverage: %w", err)
	}
	var covered []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan calendar year: %w", err)
		}
		covered = append(covered, y)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	holidayQuery := `
		SELECT holiday_date
		FROM public_holidays
		WHERE company_id = $1 AND EXTRACT(YEAR FROM holiday_date) = ANY($2)
		ORDER BY holiday_date
	`

	rows, err = q.Query(ctx, holidayQuery, companyID, covered)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	defer rows.Close()

	var holidays []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return worktime.NewCalendar(covered, holidays), nil
}
