package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/issouftoure58-design/nexus-sub008/internal/domain/contribution"
	"github.com/issouftoure58-design/nexus-sub008/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type parameterSetRepository struct {
	db *database.DB
}

func NewParameterSetRepository(db *database.DB) contribution.ParameterSetRepository {
	return &parameterSetRepository{db: db}
}

const parameterSetColumns = `
	id, company_id, version, effective_from, monthly_ceiling, lines,
	overtime_tier1_rate, overtime_tier2_rate,
	tier1_threshold_minutes, annual_contingent_minutes, created_at
`

func scanParameterSet(row pgx.Row) (contribution.SocialParameterSet, error) {
	var (
		set       contribution.SocialParameterSet
		linesJSON []byte
		tier1Rate string
		tier2Rate string
	)
	err := row.Scan(
		&set.ID, &set.CompanyID, &set.Version, &set.EffectiveFrom, &set.MonthlyCeiling, &linesJSON,
		&tier1Rate, &tier2Rate,
		&set.Tier1ThresholdMinutes, &set.AnnualContingentMinutes, &set.CreatedAt,
	)
	if err != nil {
		return contribution.SocialParameterSet{}, err
	}

	if err := json.Unmarshal(linesJSON, &set.Lines); err != nil {
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to decode contribution lines: %w", err)
	}
	if set.OvertimeTier1Rate, err = decimal.NewFromString(tier1Rate); err != nil {
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to decode tier1 rate: %w", err)
	}
	if set.OvertimeTier2Rate, err = decimal.NewFromString(tier2Rate); err != nil {
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to decode tier2 rate: %w", err)
	}

	return set, nil
}

// Create implements contribution.ParameterSetRepository.
func (r *parameterSetRepository) Create(ctx context.Context, set contribution.SocialParameterSet) (contribution.SocialParameterSet, error) {
	q := GetQuerier(ctx, r.db)

	if set.ID == "" {
		set.ID = uuid.NewString()
	}

	linesJSON, err := json.Marshal(set.Lines)
	if err != nil {
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to encode contribution lines: %w", err)
	}

	query := `
		INSERT INTO social_parameter_sets (
			id, company_id, version, effective_from, monthly_ceiling, lines,
			overtime_tier1_rate, overtime_tier2_rate,
			tier1_threshold_minutes, annual_contingent_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		set.ID,
		set.CompanyID,
		set.Version,
		set.EffectiveFrom,
		set.MonthlyCeiling,
		linesJSON,
		set.OvertimeTier1Rate.String(),
		set.OvertimeTier2Rate.String(),
		set.Tier1ThresholdMinutes,
		set.AnnualContingentMinutes,
	).Scan(&set.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return contribution.SocialParameterSet{}, contribution.ErrVersionExists
		}
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to create parameter set: %w", err)
	}

	return set, nil
}

// GetByID implements contribution.ParameterSetRepository.
func (r *parameterSetRepository) GetByID(ctx context.Context, id string, companyID string) (contribution.SocialParameterSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + parameterSetColumns + `
		FROM social_parameter_sets
		WHERE id = $1 AND company_id = $2
	`

	set, err := scanParameterSet(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.SocialParameterSet{}, contribution.ErrUnknownParameterSet
		}
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to get parameter set: %w", err)
	}

	return set, nil
}

// GetForDate implements contribution.ParameterSetRepository.
func (r *parameterSetRepository) GetForDate(ctx context.Context, companyID string, date time.Time) (contribution.SocialParameterSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + parameterSetColumns + `
		FROM social_parameter_sets
		WHERE company_id = $1 AND effective_from <= $2
		ORDER BY effective_from DESC, version DESC
		LIMIT 1
	`

	set, err := scanParameterSet(q.QueryRow(ctx, query, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.SocialParameterSet{}, contribution.ErrUnknownParameterSet
		}
		return contribution.SocialParameterSet{}, fmt.Errorf("failed to get parameter set for date: %w", err)
	}

	return set, nil
}

// ListByCompany implements contribution.ParameterSetRepository.
func (r *parameterSetRepository) ListByCompany(ctx context.Context, companyID string) ([]contribution.SocialParameterSet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + parameterSetColumns + `
		FROM social_parameter_sets
		WHERE company_id = $1
		ORDER BY effective_from DESC, version DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameter sets: %w", err)
	}
	defer rows.Close()

	var sets []contribution.SocialParameterSet
	for rows.Next() {
		set, err := scanParameterSet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parameter set: %w", err)
		}
		sets = append(sets, set)
	}

	return sets, rows.Err()
}
