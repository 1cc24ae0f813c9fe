package ports

import (
	"context"

	"github.com/lexcase/practice-api/internal/core/domain"
)

// CreateClientInput carries all data needed to register a client record.
type CreateClientInput struct {
	FullName   string
	Email      string
	Phone      string
	Address    string
	ClientType string
	Status     string
	Notes      string
}

// ListClientsInput carries the filters and pagination for the client list.
type ListClientsInput struct {
	Search     string
	ClientType string
	Status     string
	Page       int
	Limit      int
}

// ListClientsResult is the paginated client list envelope.
type ListClientsResult struct {
	Clients    []domain.Client
	Total      int64
	Page       int
	TotalPages int
}

// ClientService defines use-case operations for client records.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, input ListClientsInput) (*ListClientsResult, error)
}
