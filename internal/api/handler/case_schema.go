package handler

import (
	"time"

	"github.com/lexcase/practice-api/internal/core/domain"
)

type createCaseRequest struct {
	CaseNumber     string     `json:"case_number"     validate:"required"`
	Title          string     `json:"title"           validate:"required"`
	Description    string     `json:"description"     validate:"omitempty"`
	CaseType       string     `json:"case_type"       validate:"required,oneof=civil criminal corporate family"`
	Status         string     `json:"status"          validate:"omitempty,oneof=active pending completed on-hold"`
	Priority       string     `json:"priority"        validate:"omitempty,oneof=low medium high urgent"`
	ClientID       *int64     `json:"client_id"       validate:"omitempty,gt=0"`
	AssignedToID   *int64     `json:"assigned_to_id"  validate:"omitempty,gt=0"`
	NextHearing    *time.Time `json:"next_hearing"`
	EstimatedValue *float64   `json:"estimated_value" validate:"omitempty,gt=0"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

type listCasesResponse struct {
	Cases []domain.Case `json:"cases"`
	paginationResponse
}
