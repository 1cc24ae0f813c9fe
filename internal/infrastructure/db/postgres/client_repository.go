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

var _ ports.ClientRepository = (*ClientRepository)(nil)

const clientColumns = `id, full_name, email, phone, address, client_type, status, notes, created_at, updated_at`

// ClientRepository persists client records in PostgreSQL.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (full_name, email, phone, address, client_type, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + clientColumns

	created, err := r.scanOne(r.pool.QueryRow(ctx, query,
		c.FullName, c.Email, c.Phone, c.Address, c.ClientType, c.Status, c.Notes,
		c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrClientExists
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ClientFilter) ([]domain.Client, int64, error) {
	where, args := clientConditions(filter)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+clientColumns+` FROM clients%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, total, rows.Err()
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func clientConditions(filter ports.ClientFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if filter.ClientType != "" {
		args = append(args, filter.ClientType)
		conds = append(conds, fmt.Sprintf("client_type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *ClientRepository) scanOne(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	if err := scanClient(row, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClient(row pgx.Row, c *domain.Client) error {
	return row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.ClientType,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
}
