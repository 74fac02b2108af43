package app

import (
	"context"

	"github.com/solvex/cotizaciones/internal/domain/model"
	"github.com/solvex/cotizaciones/internal/usecase"
)

// HealthChecker reports backing storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ServiceFacade bundles auth and quote use cases behind the surface the HTTP
// layer consumes.
type ServiceFacade struct {
	auth   *usecase.AuthUseCase
	quotes *usecase.QuoteUseCase
	health HealthChecker
}

func NewServiceFacade(auth *usecase.AuthUseCase, quotes *usecase.QuoteUseCase, health HealthChecker) *ServiceFacade {
	return &ServiceFacade{auth: auth, quotes: quotes, health: health}
}

func (f *ServiceFacade) Register(ctx context.Context, username, password string) (*model.User, error) {
	return f.auth.Register(ctx, username, password)
}

func (f *ServiceFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *ServiceFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *ServiceFacade) Quotes(ctx context.Context) ([]model.Quote, error) {
	return f.quotes.List(ctx)
}

func (f *ServiceFacade) QuoteByID(ctx context.Context, id int64) (*model.Quote, error) {
	return f.quotes.GetByID(ctx, id)
}

func (f *ServiceFacade) CreateQuote(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error) {
	return f.quotes.Create(ctx, draft)
}

func (f *ServiceFacade) UpdateQuote(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error) {
	return f.quotes.Update(ctx, id, update)
}

func (f *ServiceFacade) DeleteQuote(ctx context.Context, id int64) error {
	return f.quotes.Delete(ctx, id)
}

func (f *ServiceFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
