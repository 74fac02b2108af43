package repository

import (
	"context"

	"github.com/solvex/cotizaciones/internal/domain/model"
)

// QuoteRepository describes persistence operations for quotes.
type QuoteRepository interface {
	List(ctx context.Context) ([]model.Quote, error)
	GetByID(ctx context.Context, id int64) (*model.Quote, error)
	Create(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error)
	Update(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error)
	Delete(ctx context.Context, id int64) error
}
