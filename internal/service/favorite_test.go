package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cinelist/cinelist/internal/domain"
)

// fakeUserGateway serves canned users keyed by id.
type fakeUserGateway struct {
	UserGateway
	users map[string]domain.User
}

func (f *fakeUserGateway) GetByID(ctx context.Context, id string, includeFavorites bool) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}

// fakeMovieGateway serves canned movies keyed by id.
type fakeMovieGateway struct {
	MovieGateway
	movies map[string]domain.Movie
}

func (f *fakeMovieGateway) GetByID(ctx context.Context, id string) (domain.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return domain.Movie{}, ErrNotFound
	}
	return movie, nil
}

// fakeFavoriteGateway records pair mutations and can be primed to fail.
type fakeFavoriteGateway struct {
	added   [][2]string
	deleted [][2]string
	addErr  error
}

func (f *fakeFavoriteGateway) Add(ctx context.Context, userID, movieID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, [2]string{userID, movieID})
	return nil
}

func (f *fakeFavoriteGateway) Delete(ctx context.Context, userID, movieID string) error {
	f.deleted = append(f.deleted, [2]string{userID, movieID})
	return nil
}

// fakeUnitOfWork hands out the fake gateways and records commit/rollback calls.
type fakeUnitOfWork struct {
	favorites  *fakeFavoriteGateway
	committed  bool
	rolledBack bool
}

func (f *fakeUnitOfWork) Movies() MovieGateway       { return nil }
func (f *fakeUnitOfWork) Users() UserGateway         { return nil }
func (f *fakeUnitOfWork) Favorites() FavoriteGateway { return f.favorites }

func (f *fakeUnitOfWork) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeUnitOfWork) Flush(ctx context.Context) error { return nil }

func (f *fakeUnitOfWork) Rollback(ctx context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeUoWBeginner struct {
	uow *fakeUnitOfWork
}

func (f *fakeUoWBeginner) BeginUnitOfWork(ctx context.Context) (UnitOfWork, error) {
	return f.uow, nil
}

func newFavoritesFixture() (*Favorites, *fakeUserGateway, *fakeMovieGateway, *fakeUnitOfWork) {
	movie := domain.Movie{ID: "movie-1", Title: "Sample Movie"}
	other := domain.Movie{ID: "movie-2", Title: "Other Movie"}
	user := domain.User{ID: "user-1", Username: "testuser", Favorites: []domain.Movie{movie}}

	users := &fakeUserGateway{users: map[string]domain.User{user.ID: user}}
	movies := &fakeMovieGateway{movies: map[string]domain.Movie{movie.ID: movie, other.ID: other}}
	uow := &fakeUnitOfWork{favorites: &fakeFavoriteGateway{}}
	svc := NewFavorites(users, movies, &fakeUoWBeginner{uow: uow})
	return svc, users, movies, uow
}

func TestFavoritesAdd_Success(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	if err := svc.Add(context.Background(), "user-1", "movie-2"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(uow.favorites.added) != 1 {
		t.Fatalf("expected one insert, got %d", len(uow.favorites.added))
	}
	if !uow.committed {
		t.Fatalf("successful add must commit")
	}
}

func TestFavoritesAdd_UserNotFound(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	err := svc.Add(context.Background(), "missing", "movie-2")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if len(uow.favorites.added) != 0 || uow.committed {
		t.Fatalf("precondition failure must not touch the gateway")
	}
}

func TestFavoritesAdd_MovieNotFound(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	err := svc.Add(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("err = %v, want ErrMovieNotFound", err)
	}
	if uow.committed {
		t.Fatalf("precondition failure must not commit")
	}
}

func TestFavoritesAdd_Duplicate(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	err := svc.Add(context.Background(), "user-1", "movie-1")
	if !errors.Is(err, ErrAlreadyFavorite) {
		t.Fatalf("err = %v, want ErrAlreadyFavorite", err)
	}
	if uow.committed {
		t.Fatalf("duplicate must not commit")
	}
}

func TestFavoritesAdd_RacedDuplicate(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()
	uow.favorites.addErr = ErrConflict

	// movie-2 passes the membership pre-check but the insert loses the race.
	err := svc.Add(context.Background(), "user-1", "movie-2")
	if !errors.Is(err, ErrAlreadyFavorite) {
		t.Fatalf("err = %v, want ErrAlreadyFavorite", err)
	}
	if uow.committed {
		t.Fatalf("raced duplicate must not commit")
	}
	if !uow.rolledBack {
		t.Fatalf("raced duplicate must roll back")
	}
}

func TestFavoritesRemove_Success(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	if err := svc.Remove(context.Background(), "user-1", "movie-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(uow.favorites.deleted) != 1 {
		t.Fatalf("expected one delete, got %d", len(uow.favorites.deleted))
	}
	if !uow.committed {
		t.Fatalf("successful remove must commit")
	}
}

func TestFavoritesRemove_NotInFavorites(t *testing.T) {
	svc, _, _, uow := newFavoritesFixture()

	err := svc.Remove(context.Background(), "user-1", "movie-2")
	if !errors.Is(err, ErrNotInFavorites) {
		t.Fatalf("err = %v, want ErrNotInFavorites", err)
	}
	if len(uow.favorites.deleted) != 0 || uow.committed {
		t.Fatalf("missing membership must not touch the gateway")
	}
}

func TestFavoritesRemove_UserNotFound(t *testing.T) {
	svc, _, _, _ := newFavoritesFixture()

	if err := svc.Remove(context.Background(), "missing", "movie-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestFavoritesListForUser(t *testing.T) {
	svc, _, _, _ := newFavoritesFixture()

	movies, err := svc.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != "movie-1" {
		t.Fatalf("unexpected favorites: %+v", movies)
	}

	if _, err := svc.ListForUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestMovieInList(t *testing.T) {
	favorites := []domain.Movie{{ID: "a"}, {ID: "b"}}

	if !movieInList(favorites, "b") {
		t.Fatalf("expected membership for b")
	}
	if movieInList(favorites, "c") {
		t.Fatalf("unexpected membership for c")
	}
	if movieInList(nil, "a") {
		t.Fatalf("empty list cannot contain anything")
	}
}
