package service

import (
	"context"

	"github.com/cinelist/cinelist/internal/domain"
)

// Users orchestrates user use cases over the gateway.
type Users struct {
	gateway UserGateway
	uow     UnitOfWorkBeginner
}

// NewUsers wires the user service with its persistence collaborators.
func NewUsers(gateway UserGateway, uow UnitOfWorkBeginner) *Users {
	return &Users{gateway: gateway, uow: uow}
}

// Add creates a user with an empty favorites collection. A duplicate username
// surfaces as ErrConflict, not a server fault.
func (s *Users) Add(ctx context.Context, username string) (domain.User, error) {
	return s.gateway.Add(ctx, username)
}

// List returns up to limit users after skipping skip records, each with its
// favorites collection attached.
func (s *Users) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	return s.gateway.List(ctx, skip, limit)
}

// Get fetches a user by id, optionally with favorites.
func (s *Users) Get(ctx context.Context, id string, includeFavorites bool) (domain.User, error) {
	return s.gateway.GetByID(ctx, id, includeFavorites)
}

// Update replaces the username unconditionally and commits. Unlike movie
// updates, an empty value still overwrites.
func (s *Users) Update(ctx context.Context, id, username string) (domain.User, error) {
	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return domain.User{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	user, err := uow.Users().Update(ctx, id, username)
	if err != nil {
		return domain.User{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Delete removes a user and returns its last-known state. Favorite rows go
// with it via the store's cascade.
func (s *Users) Delete(ctx context.Context, id string) (domain.User, error) {
	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return domain.User{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	user, err := uow.Users().DeleteByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
