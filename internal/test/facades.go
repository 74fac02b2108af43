package test

import (
	"context"

	"github.com/solvex/cotizaciones/internal/domain/model"
)

// QuoteFacadeStub provides controllable behaviour for quote endpoints.
type QuoteFacadeStub struct {
	QuotesFn func(context.Context) ([]model.Quote, error)
	QuoteFn  func(context.Context, int64) (*model.Quote, error)
	CreateFn func(context.Context, model.QuoteDraft) (*model.Quote, error)
	UpdateFn func(context.Context, int64, model.QuoteUpdate) (*model.Quote, error)
	DeleteFn func(context.Context, int64) error
}

// Quotes returns predefined quote list.
func (s QuoteFacadeStub) Quotes(ctx context.Context) ([]model.Quote, error) {
	if s.QuotesFn != nil {
		return s.QuotesFn(ctx)
	}
	return []model.Quote{{ID: 1, Cliente: "Acme", Descripcion: "Widget", Monto: 99.5, Fecha: "2024-01-01"}}, nil
}

// QuoteByID returns predefined quote for given id.
func (s QuoteFacadeStub) QuoteByID(ctx context.Context, id int64) (*model.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, id)
	}
	return &model.Quote{ID: id, Cliente: "Acme"}, nil
}

// CreateQuote echoes the draft back with an assigned id.
func (s QuoteFacadeStub) CreateQuote(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	return &model.Quote{ID: 1, Cliente: draft.Cliente, Descripcion: draft.Descripcion, Monto: draft.Monto, Fecha: draft.Fecha}, nil
}

// UpdateQuote executes configured update handler.
func (s QuoteFacadeStub) UpdateQuote(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return &model.Quote{ID: id}, nil
}

// DeleteQuote executes configured delete handler.
func (s QuoteFacadeStub) DeleteQuote(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configurable storage health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// ServiceFacadeStub aggregates facade dependencies for HTTP layer tests.
type ServiceFacadeStub struct {
	AuthFacadeStub
	QuoteFacadeStub
	HealthFacadeStub
}
