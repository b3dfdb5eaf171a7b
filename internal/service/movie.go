package service

import (
	"context"

	"github.com/cinelist/cinelist/internal/domain"
)

// Movies orchestrates movie use cases over the gateway. Reads and creates run
// pool-backed; update and delete run through a unit of work so the caller's
// precondition failures never reach Commit.
type Movies struct {
	gateway MovieGateway
	uow     UnitOfWorkBeginner
}

// NewMovies wires the movie service with its persistence collaborators.
func NewMovies(gateway MovieGateway, uow UnitOfWorkBeginner) *Movies {
	return &Movies{gateway: gateway, uow: uow}
}

// Add stores a new movie and returns it with the server-assigned id.
func (s *Movies) Add(ctx context.Context, params MovieCreateParams) (domain.Movie, error) {
	return s.gateway.Add(ctx, params)
}

// List returns up to limit movies after skipping skip records.
func (s *Movies) List(ctx context.Context, skip, limit int) ([]domain.Movie, error) {
	return s.gateway.List(ctx, skip, limit)
}

// Get fetches a movie by id, returning ErrNotFound when absent.
func (s *Movies) Get(ctx context.Context, id string) (domain.Movie, error) {
	return s.gateway.GetByID(ctx, id)
}

// Update applies a partial update and commits it.
func (s *Movies) Update(ctx context.Context, id string, params MovieUpdateParams) (domain.Movie, error) {
	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return domain.Movie{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	movie, err := uow.Movies().Update(ctx, id, params)
	if err != nil {
		return domain.Movie{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

// Delete removes a movie and returns its last-known state.
func (s *Movies) Delete(ctx context.Context, id string) (domain.Movie, error) {
	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return domain.Movie{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	movie, err := uow.Movies().DeleteByID(ctx, id)
	if err != nil {
		return domain.Movie{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
