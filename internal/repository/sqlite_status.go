package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
)

// SQLiteStatusRepo implements StatusRepo using a SQLite database.
type SQLiteStatusRepo struct {
	db db.DBTX
}

// NewSQLiteStatusRepo creates a new SQLiteStatusRepo.
func NewSQLiteStatusRepo(conn db.DBTX) *SQLiteStatusRepo {
	return &SQLiteStatusRepo{db: conn}
}

func (r *SQLiteStatusRepo) Get(ctx context.Context) (*domain.CoverageStatus, error) {
	query := `SELECT id, is_covered, is_exempt, exemption_type, outcome_label,
		annual_sales, provisional, details, updated_at
		FROM coverage_status WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DefaultStatusID)

	var (
		s           domain.CoverageStatus
		isCovered   int
		isExempt    int
		provisional int
		details     string
		updatedAt   string
	)
	err := row.Scan(
		&s.ID,
		&isCovered,
		&isExempt,
		&s.ExemptionType,
		&s.OutcomeLabel,
		&s.AnnualSales,
		&provisional,
		&details,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("coverage status: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning coverage status: %w", err)
	}

	s.IsCovered = intToBool(isCovered)
	s.IsExempt = intToBool(isExempt)
	s.Provisional = intToBool(provisional)
	s.UpdatedAt = parseTime(updatedAt)
	s.Details, err = jsonToMap(details)
	if err != nil {
		return nil, fmt.Errorf("decoding status details: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStatusRepo) Upsert(ctx context.Context, s *domain.CoverageStatus) error {
	details, err := mapToJSON(s.Details)
	if err != nil {
		return fmt.Errorf("encoding status details: %w", err)
	}

	query := `INSERT OR REPLACE INTO coverage_status
		(id, is_covered, is_exempt, exemption_type, outcome_label,
		 annual_sales, provisional, details, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		boolToInt(s.IsCovered),
		boolToInt(s.IsExempt),
		string(s.ExemptionType),
		s.OutcomeLabel,
		s.AnnualSales,
		boolToInt(s.Provisional),
		details,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting coverage status: %w", err)
	}
	return nil
}

func (r *SQLiteStatusRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM coverage_status WHERE id = ?", domain.DefaultStatusID)
	if err != nil {
		return fmt.Errorf("clearing coverage status: %w", err)
	}
	return nil
}
