package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxRequestBody = 1 << 20 // 1 MiB

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// detailResponse is the envelope for every error and status-message body.
type detailResponse struct {
	Detail string `json:"detail"`
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("failed to encode response", "error", err)
		}
	}
}

func (s *Server) respondDetail(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, detailResponse{Detail: detail})
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		s.respondDetail(w, http.StatusBadRequest, "Malformed JSON payload")
	case errors.As(err, &typeError):
		s.respondDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid value for field %s", typeError.Field))
	case errors.Is(err, io.EOF):
		s.respondDetail(w, http.StatusBadRequest, "Request body cannot be empty")
	default:
		s.respondDetail(w, http.StatusBadRequest, "Unable to parse request body")
	}
}

// parsePagination reads skip/limit query values with their defaults. Values
// must be non-negative integers.
func parsePagination(query url.Values) (skip, limit int, err error) {
	skip, limit = defaultSkip, defaultLimit

	if val := strings.TrimSpace(query.Get("skip")); val != "" {
		skip, err = strconv.Atoi(val)
		if err != nil || skip < 0 {
			return 0, 0, fmt.Errorf("skip must be a non-negative integer")
		}
	}
	if val := strings.TrimSpace(query.Get("limit")); val != "" {
		limit, err = strconv.Atoi(val)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("limit must be a non-negative integer")
		}
	}
	return skip, limit, nil
}

func normalizeStringPtr(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	val := strings.TrimSpace(*ptr)
	if val == "" {
		return nil
	}
	return &val
}
