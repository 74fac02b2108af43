package usecase

import (
	"context"

	"github.com/solvex/cotizaciones/internal/domain/model"
	"github.com/solvex/cotizaciones/internal/domain/repository"
)

// QuoteUseCase exposes quote record operations over the repository.
type QuoteUseCase struct {
	quotes repository.QuoteRepository
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(quotes repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes}
}

// List returns all stored quotes.
func (u *QuoteUseCase) List(ctx context.Context) ([]model.Quote, error) {
	return u.quotes.List(ctx)
}

// GetByID fetches a single quote.
func (u *QuoteUseCase) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	return u.quotes.GetByID(ctx, id)
}

// Create persists a new quote; the store assigns the id.
func (u *QuoteUseCase) Create(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error) {
	return u.quotes.Create(ctx, draft)
}

// Update replaces the submitted fields of an existing quote.
func (u *QuoteUseCase) Update(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error) {
	return u.quotes.Update(ctx, id, update)
}

// Delete removes a quote.
func (u *QuoteUseCase) Delete(ctx context.Context, id int64) error {
	return u.quotes.Delete(ctx, id)
}
