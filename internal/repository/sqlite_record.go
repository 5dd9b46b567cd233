package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
)

const recordColumns = `id, type, title, date, data, notes, created_at`

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.Record) error {
	data, err := mapToJSON(rec.Data)
	if err != nil {
		return fmt.Errorf("encoding record data: %w", err)
	}

	query := `INSERT INTO records (` + recordColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Type),
		rec.Title,
		rec.Date.Format(time.DateOnly),
		data,
		rec.Notes,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query)
}

func (r *SQLiteRecordRepo) ListByType(ctx context.Context, t domain.RecordType) ([]*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE type = ?
		ORDER BY date DESC, created_at DESC`
	return r.queryRecords(ctx, query, string(t))
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("record: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteRecordRepo) queryRecords(ctx context.Context, query string, args ...any) ([]*domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.Record, error) {
	var (
		rec       domain.Record
		date      string
		data      string
		createdAt string
	)
	err := row.Scan(
		&rec.ID,
		&rec.Type,
		&rec.Title,
		&date,
		&data,
		&rec.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Date = parseDate(date)
	rec.CreatedAt = parseTime(createdAt)
	rec.Data, err = jsonToMap(data)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
