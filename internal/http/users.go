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

type userCreateRequest struct {
	Username string `json:"username"`
}

type userUpdateRequest struct {
	Username *string `json:"username"`
}

type userResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Favorites []movieResponse `json:"favorites"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		s.respondDetail(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := s.users.Add(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			s.respondDetail(w, http.StatusBadRequest, "User with that username already exists.")
			return
		}
		s.logger.Error("create user", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parsePagination(r.URL.Query())
	if err != nil {
		s.respondDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := s.users.List(r.Context(), skip, limit)
	if err != nil {
		s.logger.Error("list users", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}

	user, err := s.users.Get(r.Context(), id, true)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
			return
		}
		s.logger.Error("get user", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}

	var req userUpdateRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.Username == nil {
		s.respondDetail(w, http.StatusBadRequest, "username is required")
		return
	}

	// Unlike movies, a provided username always overwrites.
	user, err := s.users.Update(r.Context(), id, *req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		case errors.Is(err, service.ErrConflict):
			s.respondDetail(w, http.StatusBadRequest, "User with that username already exists.")
		default:
			s.logger.Error("update user", "error", err)
			s.respondDetail(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
		return
	}

	if _, err := s.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.respondDetail(w, http.StatusNotFound, "User not found for specified user_id.")
			return
		}
		s.logger.Error("delete user", "error", err)
		s.respondDetail(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	s.respondDetail(w, http.StatusOK, "User deleted")
}

// userIDParam extracts and validates the user id path parameter.
func userIDParam(r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "userID")
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Favorites: toMovieResponses(user.Favorites),
	}
}
