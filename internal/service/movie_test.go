package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cinelist/cinelist/internal/domain"
)

// fakeTxMovieGateway stands in for a transaction-bound movie gateway.
type fakeTxMovieGateway struct {
	MovieGateway
	movie domain.Movie
	err   error
}

func (f *fakeTxMovieGateway) Update(ctx context.Context, id string, params MovieUpdateParams) (domain.Movie, error) {
	if f.err != nil {
		return domain.Movie{}, f.err
	}
	return f.movie, nil
}

func (f *fakeTxMovieGateway) DeleteByID(ctx context.Context, id string) (domain.Movie, error) {
	if f.err != nil {
		return domain.Movie{}, f.err
	}
	return f.movie, nil
}

type fakeMovieUnitOfWork struct {
	gateway    *fakeTxMovieGateway
	committed  bool
	rolledBack bool
}

func (f *fakeMovieUnitOfWork) Movies() MovieGateway       { return f.gateway }
func (f *fakeMovieUnitOfWork) Users() UserGateway         { return nil }
func (f *fakeMovieUnitOfWork) Favorites() FavoriteGateway { return nil }

func (f *fakeMovieUnitOfWork) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeMovieUnitOfWork) Flush(ctx context.Context) error { return nil }

func (f *fakeMovieUnitOfWork) Rollback(ctx context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeMovieUoWBeginner struct {
	uow *fakeMovieUnitOfWork
}

func (f *fakeMovieUoWBeginner) BeginUnitOfWork(ctx context.Context) (UnitOfWork, error) {
	return f.uow, nil
}

func TestMoviesUpdate_CommitsOnSuccess(t *testing.T) {
	uow := &fakeMovieUnitOfWork{gateway: &fakeTxMovieGateway{movie: domain.Movie{ID: "m1", Title: "After"}}}
	svc := NewMovies(nil, &fakeMovieUoWBeginner{uow: uow})

	movie, err := svc.Update(context.Background(), "m1", MovieUpdateParams{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if movie.Title != "After" {
		t.Fatalf("movie = %+v", movie)
	}
	if !uow.committed {
		t.Fatalf("successful update must commit")
	}
}

func TestMoviesUpdate_NoCommitOnNotFound(t *testing.T) {
	uow := &fakeMovieUnitOfWork{gateway: &fakeTxMovieGateway{err: ErrNotFound}}
	svc := NewMovies(nil, &fakeMovieUoWBeginner{uow: uow})

	if _, err := svc.Update(context.Background(), "m1", MovieUpdateParams{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if uow.committed {
		t.Fatalf("not-found must short-circuit before commit")
	}
	if !uow.rolledBack {
		t.Fatalf("not-found must roll the unit of work back")
	}
}

func TestMoviesDelete_CommitsOnSuccess(t *testing.T) {
	uow := &fakeMovieUnitOfWork{gateway: &fakeTxMovieGateway{movie: domain.Movie{ID: "m1", Title: "Gone"}}}
	svc := NewMovies(nil, &fakeMovieUoWBeginner{uow: uow})

	movie, err := svc.Delete(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if movie.Title != "Gone" {
		t.Fatalf("delete should return last-known state, got %+v", movie)
	}
	if !uow.committed {
		t.Fatalf("successful delete must commit")
	}
}
