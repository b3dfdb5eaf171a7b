package service

import (
	"context"
	"errors"

	"github.com/cinelist/cinelist/internal/domain"
)

// ErrNotFound is returned by gateways when the requested entity does not exist.
var ErrNotFound = errors.New("gateway: not found")

// ErrConflict is returned by gateways when a uniqueness constraint rejects a
// write (duplicate username, duplicate favorite pair).
var ErrConflict = errors.New("gateway: already exists")

// MovieCreateParams bundles the fields required to create a movie.
type MovieCreateParams struct {
	Title       string
	Description *string
}

// MovieUpdateParams carries the partial-update payload. Nil fields leave the
// stored value untouched.
type MovieUpdateParams struct {
	Title       *string
	Description *string
}

// MovieGateway persists movie entities.
type MovieGateway interface {
	Add(ctx context.Context, params MovieCreateParams) (domain.Movie, error)
	List(ctx context.Context, skip, limit int) ([]domain.Movie, error)
	GetByID(ctx context.Context, id string) (domain.Movie, error)
	Update(ctx context.Context, id string, params MovieUpdateParams) (domain.Movie, error)
	DeleteByID(ctx context.Context, id string) (domain.Movie, error)
}

// UserGateway persists user entities. Read operations attach the favorites
// collection only when asked to, so callers decide whether the extra query runs.
type UserGateway interface {
	Add(ctx context.Context, username string) (domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	GetByID(ctx context.Context, id string, includeFavorites bool) (domain.User, error)
	Update(ctx context.Context, id, username string) (domain.User, error)
	DeleteByID(ctx context.Context, id string) (domain.User, error)
}

// FavoriteGateway persists the user/movie join relation. Existence and
// duplication preconditions live in the favorites service, not here.
type FavoriteGateway interface {
	Add(ctx context.Context, userID, movieID string) error
	Delete(ctx context.Context, userID, movieID string) error
}

// UnitOfWork scopes gateway mutations to a single transaction and decides when
// the pending changes become durable. Any failure before Commit leaves the
// backing store untouched once Rollback runs.
type UnitOfWork interface {
	Movies() MovieGateway
	Users() UserGateway
	Favorites() FavoriteGateway

	// Commit durably persists all pending changes.
	Commit(ctx context.Context) error
	// Flush pushes pending changes to the backing store without finalizing
	// the transaction. Part of the contract, unused by current call sites.
	Flush(ctx context.Context) error
	// Rollback discards pending changes. Safe to call after Commit.
	Rollback(ctx context.Context) error
}

// UnitOfWorkBeginner opens request-scoped units of work.
type UnitOfWorkBeginner interface {
	BeginUnitOfWork(ctx context.Context) (UnitOfWork, error)
}
