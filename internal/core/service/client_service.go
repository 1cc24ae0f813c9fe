package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexcase/practice-api/internal/core/domain"
	"github.com/lexcase/practice-api/internal/core/ports"
)

const defaultClientLimit = 12

// ClientService implements client-record use-cases.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	c := &domain.Client{
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      optional(input.Phone),
		Address:    optional(input.Address),
		ClientType: defaultString(input.ClientType, domain.ClientTypeIndividual),
		Status:     defaultString(input.Status, "active"),
		Notes:      optional(input.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context, input ports.ListClientsInput) (*ports.ListClientsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit, defaultClientLimit)

	clients, total, err := s.repo.List(ctx, ports.ClientFilter{
		Search:     input.Search,
		ClientType: input.ClientType,
		Status:     input.Status,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListClientsResult{
		Clients:    clients,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}
