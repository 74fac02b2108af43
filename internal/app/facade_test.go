package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/solvex/cotizaciones/internal/domain/errors"
	"github.com/solvex/cotizaciones/internal/domain/model"
	"github.com/solvex/cotizaciones/internal/server/http/handlers"
	testhelpers "github.com/solvex/cotizaciones/internal/test"
	"github.com/solvex/cotizaciones/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (h healthCheckerStub) HealthCheck(context.Context) error {
	return h.err
}

func newFacade() (*ServiceFacade, *testhelpers.UserRepositoryStub, *testhelpers.QuoteRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (string, error) { return "user", nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	quoteRepo := testhelpers.NewQuoteRepositoryStub()
	quoteUC := usecase.NewQuoteUseCase(quoteRepo)

	facade := NewServiceFacade(authUC, quoteUC, healthCheckerStub{})
	return facade, userRepo, quoteRepo
}

func TestServiceFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade()
	usr, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if usr.Username != "user" {
		t.Fatalf("unexpected username %q", usr.Username)
	}

	stored, err := users.GetByUsername(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Username != "user" {
		t.Fatalf("unexpected stored username %q", stored.Username)
	}

	token, err := facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token:user" {
		t.Fatalf("unexpected token %q", token)
	}

	subject, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if subject != "user" {
		t.Fatalf("unexpected subject %q", subject)
	}
}

func TestServiceFacadeQuotes(t *testing.T) {
	facade, _, quotes := newFacade()
	ctx := context.Background()

	created, err := facade.CreateQuote(ctx, model.QuoteDraft{Cliente: "Acme", Descripcion: "Widget", Monto: 12.5, Fecha: "2024-06-01"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	list, err := facade.Quotes(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one quote, got %d", len(list))
	}

	fetched, err := facade.QuoteByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if fetched.Cliente != "Acme" {
		t.Fatalf("unexpected cliente %q", fetched.Cliente)
	}

	monto := 99.0
	updated, err := facade.UpdateQuote(ctx, created.ID, model.QuoteUpdate{Monto: &monto})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Monto != 99.0 {
		t.Fatalf("unexpected monto %v", updated.Monto)
	}
	if updated.Cliente != "Acme" {
		t.Fatalf("expected untouched field to survive, got %q", updated.Cliente)
	}

	if err := facade.DeleteQuote(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.QuoteByID(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := quotes.GetByID(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected quote removed from repository, got %v", err)
	}
}

func TestServiceFacadeHealth(t *testing.T) {
	facadeOK := NewServiceFacade(nil, nil, healthCheckerStub{})
	if err := facadeOK.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	sentinel := errors.New("db down")
	facadeBad := NewServiceFacade(nil, nil, healthCheckerStub{err: sentinel})
	if err := facadeBad.HealthCheck(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

var _ handlers.ServiceFacade = (*ServiceFacade)(nil)
