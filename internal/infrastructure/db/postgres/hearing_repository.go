package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

var _ ports.HearingRepository = (*HearingRepository)(nil)

const hearingColumns = `id, case_id, title, court, room, scheduled_at, duration, notes, status, created_at`

// HearingRepository persists hearings in PostgreSQL.
type HearingRepository struct {
	pool *pgxpool.Pool
}

func NewHearingRepository(pool *pgxpool.Pool) *HearingRepository {
	return &HearingRepository{pool: pool}
}

func (r *HearingRepository) Create(ctx context.Context, h *domain.Hearing) (*domain.Hearing, error) {
	query := `
		INSERT INTO hearings (case_id, title, court, room, scheduled_at, duration, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + hearingColumns

	var created domain.Hearing
	err := scanHearing(r.pool.QueryRow(ctx, query,
		h.CaseID, h.Title, h.Court, h.Room, h.ScheduledAt, h.Duration, h.Notes,
		h.Status, h.CreatedAt,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("insert hearing: %w", err)
	}
	return &created, nil
}

func (r *HearingRepository) List(ctx context.Context) ([]domain.Hearing, error) {
	query := `SELECT ` + hearingColumns + ` FROM hearings ORDER BY scheduled_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hearings: %w", err)
	}
	defer rows.Close()
	return collectHearings(rows)
}

func (r *HearingRepository) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]domain.Hearing, error) {
	query := `SELECT ` + hearingColumns + ` FROM hearings WHERE scheduled_at > $1 ORDER BY scheduled_at ASC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("upcoming hearings: %w", err)
	}
	defer rows.Close()
	return collectHearings(rows)
}

func (r *HearingRepository) CountUpcoming(ctx context.Context, after time.Time) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hearings WHERE scheduled_at > $1`, after).Scan(&n); err != nil {
		return 0, fmt.Errorf("count upcoming hearings: %w", err)
	}
	return n, nil
}

func scanHearing(row pgx.Row, h *domain.Hearing) error {
	return row.Scan(
		&h.ID, &h.CaseID, &h.Title, &h.Court, &h.Room, &h.ScheduledAt,
		&h.Duration, &h.Notes, &h.Status, &h.CreatedAt,
	)
}

func collectHearings(rows pgx.Rows) ([]domain.Hearing, error) {
	var hearings []domain.Hearing
	for rows.Next() {
		var h domain.Hearing
		if err := scanHearing(rows, &h); err != nil {
			return nil, fmt.Errorf("scan hearing: %w", err)
		}
		hearings = append(hearings, h)
	}
	return hearings, rows.Err()
}
