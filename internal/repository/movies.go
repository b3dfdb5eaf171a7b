package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cinelist/cinelist/internal/domain"
	"github.com/cinelist/cinelist/internal/service"
	"github.com/cinelist/cinelist/internal/store"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	db store.Querier
}

const movieColumns = `
    id,
    title,
    description,
    created_at,
    updated_at
`

// Add inserts a new movie row and returns the stored entity with its
// server-assigned id.
func (r *MoviesRepository) Add(ctx context.Context, params service.MovieCreateParams) (domain.Movie, error) {
	query := fmt.Sprintf(`
        INSERT INTO movies (id, title, description)
        VALUES ($1,$2,$3)
        RETURNING %s
    `, movieColumns)

	row := r.db.QueryRow(ctx, query, uuid.NewString(), params.Title, params.Description)
	return scanMovie(row)
}

// List returns up to limit movies after skipping skip records, in insertion
// order. No matches yields an empty slice, never an error.
func (r *MoviesRepository) List(ctx context.Context, skip, limit int) ([]domain.Movie, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM movies
        ORDER BY created_at, id
        OFFSET $1 LIMIT $2
    `, movieColumns)

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id string) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns)
	row := r.db.QueryRow(ctx, query, id)
	movie, err := scanMovie(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, service.ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// Update overwrites only the fields present in params; nil fields keep the
// stored value.
func (r *MoviesRepository) Update(ctx context.Context, id string, params service.MovieUpdateParams) (domain.Movie, error) {
	query := fmt.Sprintf(`
        UPDATE movies
        SET title = COALESCE($2, title),
            description = COALESCE($3, description),
            updated_at = now()
        WHERE id = $1
        RETURNING %s
    `, movieColumns)

	row := r.db.QueryRow(ctx, query, id, params.Title, params.Description)
	movie, err := scanMovie(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, service.ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// DeleteByID removes the row and returns the record's state as it was
// immediately before removal.
func (r *MoviesRepository) DeleteByID(ctx context.Context, id string) (domain.Movie, error) {
	query := fmt.Sprintf(`DELETE FROM movies WHERE id = $1 RETURNING %s`, movieColumns)
	row := r.db.QueryRow(ctx, query, id)
	movie, err := scanMovie(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, service.ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
