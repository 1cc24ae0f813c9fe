package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

var _ ports.CaseRepository = (*CaseRepository)(nil)

const caseColumns = `id, case_number, title, description, case_type, status, priority, client_id, assigned_to_id, created_by_id, next_hearing, estimated_value, created_at, updated_at`

// CaseRepository persists cases in PostgreSQL.
type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	query := `
		INSERT INTO cases (case_number, title, description, case_type, status, priority, client_id, assigned_to_id, created_by_id, next_hearing, estimated_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + caseColumns

	created, err := r.scanOne(r.pool.QueryRow(ctx, query,
		c.CaseNumber, c.Title, c.Description, c.CaseType, c.Status, c.Priority,
		c.ClientID, c.AssignedToID, c.CreatedByID, c.NextHearing, c.EstimatedValue,
		c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCaseExists
		}
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return created, nil
}

func (r *CaseRepository) FindByID(ctx context.Context, id int64) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	c, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	return c, nil
}

// List returns a page of cases matching the filter plus the unpaginated total.
func (r *CaseRepository) List(ctx context.Context, filter ports.CaseFilter) ([]domain.Case, int64, error) {
	where, args := caseConditions(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM cases` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+caseColumns+` FROM cases%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	cases, err := collectCases(rows)
	if err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

func (r *CaseRepository) ListRecent(ctx context.Context, limit int) ([]domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent cases: %w", err)
	}
	defer rows.Close()
	return collectCases(rows)
}

func (r *CaseRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cases WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cases by status: %w", err)
	}
	return n, nil
}

// caseConditions builds the WHERE clause for the filter. Zero-value fields
// add no condition.
func caseConditions(filter ports.CaseFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR case_number ILIKE $%d)", len(args), len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CaseType != "" {
		args = append(args, filter.CaseType)
		conds = append(conds, fmt.Sprintf("case_type = $%d", len(args)))
	}
	if filter.AssignedToID != nil {
		args = append(args, *filter.AssignedToID)
		conds = append(conds, fmt.Sprintf("assigned_to_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *CaseRepository) scanOne(row pgx.Row) (*domain.Case, error) {
	var c domain.Case
	if err := scanCase(row, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCase(row pgx.Row, c *domain.Case) error {
	return row.Scan(
		&c.ID, &c.CaseNumber, &c.Title, &c.Description, &c.CaseType, &c.Status,
		&c.Priority, &c.ClientID, &c.AssignedToID, &c.CreatedByID, &c.NextHearing,
		&c.EstimatedValue, &c.CreatedAt, &c.UpdatedAt,
	)
}

func collectCases(rows pgx.Rows) ([]domain.Case, error) {
	var cases []domain.Case
	for rows.Next() {
		var c domain.Case
		if err := scanCase(rows, &c); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}
