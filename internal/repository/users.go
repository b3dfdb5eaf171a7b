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

// UsersRepository provides persistence helpers for user entities.
type UsersRepository struct {
	db store.Querier
}

const userColumns = `
    id,
    username,
    created_at,
    updated_at
`

// Add inserts a new user row. A username collision returns ErrConflict so the
// caller can distinguish "already exists" from other failures.
func (r *UsersRepository) Add(ctx context.Context, username string) (domain.User, error) {
	query := fmt.Sprintf(`
        INSERT INTO users (id, username)
        VALUES ($1,$2)
        RETURNING %s
    `, userColumns)

	row := r.db.QueryRow(ctx, query, uuid.NewString(), username)
	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, service.ErrConflict
		}
		return domain.User{}, err
	}
	user.Favorites = []domain.Movie{}
	return user, nil
}

// List returns up to limit users after skipping skip records, each with its
// favorites collection eagerly attached.
func (r *UsersRepository) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM users
        ORDER BY created_at, id
        OFFSET $1 LIMIT $2
    `, userColumns)

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	ids := make([]string, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
		ids = append(ids, user.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	favorites, err := r.favoritesByUser(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Favorites = favorites[users[i].ID]
		if users[i].Favorites == nil {
			users[i].Favorites = []domain.Movie{}
		}
	}
	return users, nil
}

// GetByID fetches a user by its identifier. Favorites are attached only when
// includeFavorites is set.
func (r *UsersRepository) GetByID(ctx context.Context, id string, includeFavorites bool) (domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	row := r.db.QueryRow(ctx, query, id)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, service.ErrNotFound
		}
		return domain.User{}, err
	}

	if includeFavorites {
		favorites, err := r.favoritesByUser(ctx, []string{id})
		if err != nil {
			return domain.User{}, err
		}
		user.Favorites = favorites[id]
		if user.Favorites == nil {
			user.Favorites = []domain.Movie{}
		}
	}
	return user, nil
}

// Update replaces the username unconditionally. Renaming onto an existing
// username returns ErrConflict.
func (r *UsersRepository) Update(ctx context.Context, id, username string) (domain.User, error) {
	query := fmt.Sprintf(`
        UPDATE users
        SET username = $2,
            updated_at = now()
        WHERE id = $1
        RETURNING %s
    `, userColumns)

	row := r.db.QueryRow(ctx, query, id, username)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, service.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.User{}, service.ErrConflict
		}
		return domain.User{}, err
	}
	return user, nil
}

// DeleteByID removes the row and returns the record's last-known state. The
// user's favorite rows are removed by the store's cascade.
func (r *UsersRepository) DeleteByID(ctx context.Context, id string) (domain.User, error) {
	query := fmt.Sprintf(`DELETE FROM users WHERE id = $1 RETURNING %s`, userColumns)
	row := r.db.QueryRow(ctx, query, id)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, service.ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// favoritesByUser loads the favorite movies of every listed user in one query.
func (r *UsersRepository) favoritesByUser(ctx context.Context, userIDs []string) (map[string][]domain.Movie, error) {
	if len(userIDs) == 0 {
		return map[string][]domain.Movie{}, nil
	}

	const query = `
        SELECT f.user_id, m.id, m.title, m.description, m.created_at, m.updated_at
        FROM favorites f
        JOIN movies m ON m.id = f.movie_id
        WHERE f.user_id = ANY($1::uuid[])
        ORDER BY f.created_at, m.id
    `

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make(map[string][]domain.Movie)
	for rows.Next() {
		var userID string
		var movie domain.Movie
		err := rows.Scan(
			&userID,
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		favorites[userID] = append(favorites[userID], movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favorites, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
