package service

import (
	"context"
	"errors"

	"github.com/cinelist/cinelist/internal/domain"
)

// Typed outcomes of favorites operations. The HTTP layer maps these to status
// codes; anything else is a server fault.
var (
	ErrUserNotFound    = errors.New("service: user not found")
	ErrMovieNotFound   = errors.New("service: movie not found")
	ErrAlreadyFavorite = errors.New("service: movie already in favorites")
	ErrNotInFavorites  = errors.New("service: movie not in favorites")
)

// Favorites applies the business rules around the user/movie join relation: a
// movie may not be added to a user's favorites twice, and removal requires
// prior membership. Both entities must exist before the pair is touched.
type Favorites struct {
	users  UserGateway
	movies MovieGateway
	uow    UnitOfWorkBeginner
}

// NewFavorites wires the favorites service with its collaborators.
func NewFavorites(users UserGateway, movies MovieGateway, uow UnitOfWorkBeginner) *Favorites {
	return &Favorites{users: users, movies: movies, uow: uow}
}

// Add inserts the (user, movie) pair after all preconditions pass. A raced
// duplicate insert is reported the same way as a pre-checked one.
func (s *Favorites) Add(ctx context.Context, userID, movieID string) error {
	user, err := s.users.GetByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	if movieInList(user.Favorites, movieID) {
		return ErrAlreadyFavorite
	}

	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.Favorites().Add(ctx, userID, movieID); err != nil {
		if errors.Is(err, ErrConflict) {
			// Lost a check-then-insert race; the storage-level constraint
			// is the backstop.
			return ErrAlreadyFavorite
		}
		return err
	}
	return uow.Commit(ctx)
}

// Remove deletes the (user, movie) pair. The movie must currently be in the
// user's favorites.
func (s *Favorites) Remove(ctx context.Context, userID, movieID string) error {
	user, err := s.users.GetByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !movieInList(user.Favorites, movieID) {
		return ErrNotInFavorites
	}

	uow, err := s.uow.BeginUnitOfWork(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.Favorites().Delete(ctx, userID, movieID); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// ListForUser returns the user's favorite movies.
func (s *Favorites) ListForUser(ctx context.Context, userID string) ([]domain.Movie, error) {
	user, err := s.users.GetByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.Favorites, nil
}

// movieInList reports whether the movie already appears in the favorites set.
func movieInList(favorites []domain.Movie, movieID string) bool {
	for _, movie := range favorites {
		if movie.ID == movieID {
			return true
		}
	}
	return false
}
