package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cinelist/cinelist/internal/domain"
	"github.com/cinelist/cinelist/internal/service"
)

type movieCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type movieUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type movieResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.respondDetail(w, http.StatusBadRequest, "title is required")
		return
	}

	movie, err := s.movies.Add(r.Context(), service.MovieCreateParams{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	})
	if err != nil {
		s.logger.Error("create movie", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to create movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r.URL.Query())
	if err != nil {
		s.respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	movies, err := s.movies.List(r.Context(), skip, limit)
	if err != nil {
		s.logger.Error("list movies", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to list movies")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "Movie not found for specified movie_id.")
		return
	}

	movie, err := s.movies.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.respondDetail(w, http.StatusNotFound, "Movie not found for specified movie_id.")
			return
		}
		s.logger.Error("get movie", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to fetch movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "Movie not found")
		return
	}

	var req movieUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	// Empty fields mean "leave unchanged" for movies.
	movie, err := s.movies.Update(r.Context(), id, service.MovieUpdateParams{
		Title:       normalizeStringPtr(req.Title),
		Description: normalizeStringPtr(req.Description),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.respondDetail(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.logger.Error("update movie", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := movieIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "Movie not found")
		return
	}

	if _, err := s.movies.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.respondDetail(w, http.StatusNotFound, "Movie not found")
			return
		}
		s.logger.Error("delete movie", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to delete movie")
		return
	}
	s.respondDetail(w, http.StatusOK, "Movie deleted")
}

// movieIDParam extracts and validates the movie id path parameter. A
// syntactically invalid id can never match a row, so the caller treats it as
// not found.
func movieIDParam(r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "movieID")
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, toMovieResponse(movie))
	}
	return out
}
