package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
)

// SQLiteChecklistRepo implements ChecklistRepo using a SQLite database.
type SQLiteChecklistRepo struct {
	db db.DBTX
}

// NewSQLiteChecklistRepo creates a new SQLiteChecklistRepo.
func NewSQLiteChecklistRepo(conn db.DBTX) *SQLiteChecklistRepo {
	return &SQLiteChecklistRepo{db: conn}
}

func (r *SQLiteChecklistRepo) Upsert(ctx context.Context, item *domain.ChecklistItem) error {
	query := `INSERT OR REPLACE INTO checklist_items (id, section, title, done, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Section,
		item.Title,
		boolToInt(item.Done),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting checklist item: %w", err)
	}
	return nil
}

func (r *SQLiteChecklistRepo) GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error) {
	query := `SELECT id, section, title, done, updated_at FROM checklist_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanChecklistItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("checklist item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning checklist item: %w", err)
	}
	return item, nil
}

func (r *SQLiteChecklistRepo) List(ctx context.Context) ([]*domain.ChecklistItem, error) {
	query := `SELECT id, section, title, done, updated_at FROM checklist_items
		ORDER BY section, id`
	return r.queryItems(ctx, query)
}

func (r *SQLiteChecklistRepo) ListBySection(ctx context.Context, section string) ([]*domain.ChecklistItem, error) {
	query := `SELECT id, section, title, done, updated_at FROM checklist_items
		WHERE section = ? ORDER BY id`
	return r.queryItems(ctx, query, section)
}

func (r *SQLiteChecklistRepo) SetDone(ctx context.Context, id string, done bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE checklist_items SET done = ?, updated_at = ? WHERE id = ?",
		boolToInt(done), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating checklist item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("checklist item: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteChecklistRepo) queryItems(ctx context.Context, query string, args ...any) ([]*domain.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing checklist items: %w", err)
	}
	defer rows.Close()

	var out []*domain.ChecklistItem
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning checklist item: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checklist items: %w", err)
	}
	return out, nil
}

func scanChecklistItem(row rowScanner) (*domain.ChecklistItem, error) {
	var (
		item      domain.ChecklistItem
		done      int
		updatedAt string
	)
	if err := row.Scan(&item.ID, &item.Section, &item.Title, &done, &updatedAt); err != nil {
		return nil, err
	}
	item.Done = intToBool(done)
	item.UpdatedAt = parseTime(updatedAt)
	return &item, nil
}
