package httpserver

import (
	"errors"
	"net/http"

	"github.com/cinelist/cinelist/internal/service"
)

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}
	movieID, ok := movieIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "Movie not found for specified movie_id.")
		return
	}

	if err := s.favorites.Add(r.Context(), userID, movieID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		case errors.Is(err, service.ErrMovieNotFound):
			s.respondDetail(w, http.StatusNotFound, "Movie not found for specified movie_id.")
		case errors.Is(err, service.ErrAlreadyFavorite):
			s.respondDetail(w, http.StatusConflict, "Movie is already in favorites.")
		default:
			s.logger.Error("add favorite", "error", err)
			s.respondDetail(w, http.StatusInternalServerError, "Failed to add favorite")
		}
		return
	}
	s.respondDetail(w, http.StatusOK, "Movie added to favorites")
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}
	movieID, ok := movieIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "Movie not found in favorites for specified user_id.")
		return
	}

	if err := s.favorites.Remove(r.Context(), userID, movieID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		case errors.Is(err, service.ErrNotInFavorites):
			s.respondDetail(w, http.StatusNotFound, "Movie not found in favorites for specified user_id.")
		default:
			s.logger.Error("delete favorite", "error", err)
			s.respondDetail(w, http.StatusInternalServerError, "Failed to delete favorite")
		}
		return
	}
	s.respondDetail(w, http.StatusOK, "Movie deleted from favorites")
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}

	movies, err := s.favorites.ListForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
			return
		}
		s.logger.Error("list favorites", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to list favorites")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}
