package test

import (
	"context"
	"sort"

	domainErrors "github.com/solvex/cotizaciones/internal/domain/errors"
	"github.com/solvex/cotizaciones/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Users[username]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername finds previously stored user.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[username]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// GetByID finds user by identifier.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// QuoteRepositoryStub keeps quotes in-memory for tests.
type QuoteRepositoryStub struct {
	Quotes map[int64]*model.Quote
	Next   int64
	Err    error
}

// NewQuoteRepositoryStub constructs stub repository with initialized map.
func NewQuoteRepositoryStub() *QuoteRepositoryStub {
	return &QuoteRepositoryStub{Quotes: make(map[int64]*model.Quote), Next: 1}
}

// List returns stored quotes ordered by id.
func (s *QuoteRepositoryStub) List(ctx context.Context) ([]model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Quote, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		result = append(result, *q)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetByID returns stored quote or not found.
func (s *QuoteRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	quote, ok := s.Quotes[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *quote
	return &copied, nil
}

// Create assigns next id and stores the draft.
func (s *QuoteRepositoryStub) Create(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	quote := &model.Quote{
		ID:          s.Next,
		Cliente:     draft.Cliente,
		Descripcion: draft.Descripcion,
		Monto:       draft.Monto,
		Fecha:       draft.Fecha,
	}
	s.Next++
	s.Quotes[quote.ID] = quote
	copied := *quote
	return &copied, nil
}

// Update applies submitted fields to an existing quote.
func (s *QuoteRepositoryStub) Update(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	quote, ok := s.Quotes[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Cliente != nil {
		quote.Cliente = *update.Cliente
	}
	if update.Descripcion != nil {
		quote.Descripcion = *update.Descripcion
	}
	if update.Monto != nil {
		quote.Monto = *update.Monto
	}
	if update.Fecha != nil {
		quote.Fecha = *update.Fecha
	}
	copied := *quote
	return &copied, nil
}

// Delete removes quote or reports not found.
func (s *QuoteRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Quotes[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Quotes, id)
	return nil
}
