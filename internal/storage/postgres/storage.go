package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/solvex/cotizaciones/internal/domain/errors"
	"github.com/solvex/cotizaciones/internal/domain/model"
	"github.com/solvex/cotizaciones/internal/domain/repository"
)

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type quoteRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Quotes() repository.QuoteRepository {
	return &quoteRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS usuarios (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cotizaciones (
            id SERIAL PRIMARY KEY,
            cliente TEXT NOT NULL DEFAULT '',
            descripcion TEXT NOT NULL DEFAULT '',
            monto DOUBLE PRECISION NOT NULL DEFAULT 0,
            fecha DATE
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO usuarios (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM usuarios WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM usuarios WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- QuoteRepository implementation ---

// quoteColumns keeps fecha textual so the stored date round-trips unchanged.
const quoteColumns = `id, cliente, descripcion, monto, COALESCE(fecha::text, '')`

func (r *quoteRepository) List(ctx context.Context) ([]model.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM cotizaciones ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.Cliente, &q.Descripcion, &q.Monto, &q.Fecha); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	const query = `SELECT ` + quoteColumns + ` FROM cotizaciones WHERE id=$1`
	var q model.Quote
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&q.ID, &q.Cliente, &q.Descripcion, &q.Monto, &q.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) Create(ctx context.Context, draft model.QuoteDraft) (*model.Quote, error) {
	const query = `INSERT INTO cotizaciones (cliente, descripcion, monto, fecha) VALUES ($1, $2, $3, $4)
                   RETURNING ` + quoteColumns
	var q model.Quote
	err := r.storage.pool.QueryRow(ctx, query, draft.Cliente, draft.Descripcion, draft.Monto, nullableDate(draft.Fecha)).
		Scan(&q.ID, &q.Cliente, &q.Descripcion, &q.Monto, &q.Fecha)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) Update(ctx context.Context, id int64, update model.QuoteUpdate) (*model.Quote, error) {
	if update.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := sq.Update("cotizaciones")
	if update.Cliente != nil {
		builder = builder.Set("cliente", *update.Cliente)
	}
	if update.Descripcion != nil {
		builder = builder.Set("descripcion", *update.Descripcion)
	}
	if update.Monto != nil {
		builder = builder.Set("monto", *update.Monto)
	}
	if update.Fecha != nil {
		builder = builder.Set("fecha", nullableDate(*update.Fecha))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(`RETURNING ` + quoteColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var q model.Quote
	err = r.storage.pool.QueryRow(ctx, query, args...).Scan(&q.ID, &q.Cliente, &q.Descripcion, &q.Monto, &q.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM cotizaciones WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// nullableDate maps an absent fecha to NULL; anything else is handed to the
// DATE column as-is and rejected by the store when malformed.
func nullableDate(fecha string) any {
	if fecha == "" {
		return nil
	}
	return fecha
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
