package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/malusolero/login-service/internal/common"
	"github.com/malusolero/login-service/internal/server/accounts"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResponse struct {
	Username string `json:"username"`
}

type tokenResponse struct {
	Token    string `json:"token"`
	Duration int    `json:"duration"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", account.Username)
	s.writeJSON(w, http.StatusCreated, accountResponse{Username: account.Username})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{
		Token:    token,
		Duration: int(s.accounts.TokenValidityDuration().Seconds()),
	})
}

func (s *Server) isAuthenticated(w http.ResponseWriter, r *http.Request) {

	account, ok := s.resolveRequest(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, accountResponse{Username: account.Username})
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {

	account, ok := s.resolveRequest(w, r)
	if !ok {
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.accounts.Update(r.Context(), account, req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, accountResponse{Username: updated.Username})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {

	account, ok := s.resolveRequest(w, r)
	if !ok {
		return
	}

	if err := s.accounts.Delete(r.Context(), account); err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// resolveRequest authenticates the request via its Authorization header. The
// candidate token is the second whitespace-delimited field, whatever the
// scheme; a missing or malformed header is an ordinary 401, never a crash.
func (s *Server) resolveRequest(w http.ResponseWriter, r *http.Request) (*accounts.Account, bool) {

	fields := strings.Fields(r.Header.Get("Authorization"))
	if len(fields) < 2 {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	account, err := s.accounts.Resolve(r.Context(), fields[1], "")
	if err != nil {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	return account, true
}

// writeServiceError maps accounts service sentinels to status codes. Unknown
// errors become a generic 500 so no internal detail leaks to the client.
func (s *Server) writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorWeakPassword):
		s.writeError(w, http.StatusBadRequest,
			"weak password: must be at least 8 characters with at least one uppercase letter, one lowercase letter and one digit")
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeError(w, http.StatusConflict, "username already exists")
	case errors.Is(err, common.ErrorNotFound):
		s.writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeError(w, http.StatusUnauthorized, "wrong credentials")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		s.writeError(w, http.StatusInternalServerError, "operation failed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Message: message})
}
