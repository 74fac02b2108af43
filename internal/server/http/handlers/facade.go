package handlers

import (
	"context"

	"github.com/solvex/cotizaciones/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
}

// QuoteFacade encapsulates quote operations exposed via HTTP.
type QuoteFacade interface {
	Quotes(ctx context.Context) ([]model.Quote, error)
	QuoteByID(ctx context.Context, id int64) (*model.Quote, error)
	CreateQuote(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error)
	UpdateQuote(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
}

// HealthFacade reports storage availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ServiceFacade aggregates the full set of operations used across handlers.
type ServiceFacade interface {
	AuthFacade
	QuoteFacade
	HealthFacade
}
