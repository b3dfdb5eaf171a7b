package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelist/cinelist/internal/service"
	"github.com/cinelist/cinelist/internal/store"
)

// Repository aggregates all domain-specific repositories behind one pool.
type Repository struct {
	pool      *pgxpool.Pool
	Movies    *MoviesRepository
	Users     *UsersRepository
	Favorites *FavoritesRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool:      pool,
		Movies:    &MoviesRepository{db: pool},
		Users:     &UsersRepository{db: pool},
		Favorites: &FavoritesRepository{db: pool},
	}
}

// BeginUnitOfWork opens a transaction-scoped unit of work with gateways bound
// to the same transaction.
func (r *Repository) BeginUnitOfWork(ctx context.Context) (service.UnitOfWork, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}
	return &UnitOfWork{tx: tx}, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
