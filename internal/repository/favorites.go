package repository

import (
	"context"
	"fmt"

	"github.com/cinelist/cinelist/internal/service"
	"github.com/cinelist/cinelist/internal/store"
)

// FavoritesRepository persists the user/movie join relation. Existence checks
// belong to the calling service; the composite primary key is the storage-level
// backstop against duplicate pairs.
type FavoritesRepository struct {
	db store.Querier
}

// Add inserts the pair. A duplicate pair returns ErrConflict.
func (r *FavoritesRepository) Add(ctx context.Context, userID, movieID string) error {
	const query = `INSERT INTO favorites (user_id, movie_id) VALUES ($1,$2)`

	if _, err := r.db.Exec(ctx, query, userID, movieID); err != nil {
		if isUniqueViolation(err) {
			return service.ErrConflict
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Delete removes the pair if present; absence of the pair is not an error at
// this layer.
func (r *FavoritesRepository) Delete(ctx context.Context, userID, movieID string) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, movieID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
