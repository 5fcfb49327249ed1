package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/identity"
	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the sanitized profile. The password hash has no field
// here on purpose: it cannot be serialized by accident.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *userResponse `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
}

func sanitize(u *users.User) *userResponse {
	return &userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusForError maps the shared taxonomy onto HTTP statuses and
// client-safe messages.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, common.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "identity service unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// fail logs the failure server-side and writes the structured error
// response. The email may be logged; passwords and hashes never are.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op, email string, err error) {
	status, message := statusForError(err)

	args := []any{"method", op, "error", err.Error()}
	if email != "" {
		args = append(args, "email", email)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", args...)
	} else {
		s.logger.Warn(r.Context(), "request rejected", args...)
	}

	writeJSON(w, status, response{Success: false, Message: message})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, r, "register", "", common.ErrInvalidInput)
		return
	}

	if err := identity.ValidateRegistration(req.Email, req.Password, req.Name); err != nil {
		s.fail(w, r, "register", req.Email, err)
		return
	}

	user, err := s.provider.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.fail(w, r, "register", req.Email, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "registration complete",
		User:    sanitize(user),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, r, "login", "", common.ErrInvalidInput)
		return
	}

	if err := identity.ValidateLogin(req.Email, req.Password); err != nil {
		s.fail(w, r, "login", req.Email, err)
		return
	}

	user, token, err := s.provider.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, r, "login", req.Email, err)
		return
	}

	s.setSessionCookie(w, token)

	s.logger.Info(r.Context(), "user logged in", "email", user.Email, "user_id", user.ID)
	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "login successful",
		User:    sanitize(user),
		Token:   token,
	})
}

// handleLogout clears the session cookie unconditionally. Logging out
// without an active session is not an error.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "logged out",
	})
}

// sessionToken extracts the session token from the request: the session
// cookie first, then an Authorization bearer header for cookie-less
// clients such as the CLI.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(common.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if h := r.Header.Get(common.AuthorizationHeader); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		s.fail(w, r, "me", "", common.ErrUnauthenticated)
		return
	}

	user, err := s.provider.Authenticate(r.Context(), token)
	if err != nil {
		s.fail(w, r, "me", "", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		User:    sanitize(user),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "gatekeeper",
	})
}
