package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cinelist/cinelist/internal/service"
)

// UnitOfWork binds the gateways to a single pgx transaction. Nothing becomes
// durable until Commit; a deferred Rollback after an early return discards all
// pending work.
type UnitOfWork struct {
	tx pgx.Tx
}

// Movies returns the movie gateway bound to this transaction.
func (u *UnitOfWork) Movies() service.MovieGateway {
	return &MoviesRepository{db: u.tx}
}

// Users returns the user gateway bound to this transaction.
func (u *UnitOfWork) Users() service.UserGateway {
	return &UsersRepository{db: u.tx}
}

// Favorites returns the favorites gateway bound to this transaction.
func (u *UnitOfWork) Favorites() service.FavoriteGateway {
	return &FavoritesRepository{db: u.tx}
}

// Commit durably persists the pending changes.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

// Flush pushes pending work to the backing store without finalizing the
// transaction. pgx executes statements eagerly, so this reduces to a sync on
// the transaction's connection.
func (u *UnitOfWork) Flush(ctx context.Context) error {
	return u.tx.Conn().Ping(ctx)
}

// Rollback discards pending changes. Calling it after Commit is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
