package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mvaldren/inkwell/internal/domain"
	"github.com/mvaldren/inkwell/internal/service"
	"github.com/mvaldren/inkwell/internal/view"
)

const siteDescription = "Simple blog backend."

// AuthHandler handles the login page, login, registration, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
	tokenTTL     time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure, tokenTTL: tokenTTL}
}

// HandleLoginPage renders the admin login view.
// GET /admin
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	view.LoginPage(view.Bag{Title: "Admin", Description: siteDescription}).Render(r.Context(), w)
}

// HandleLogin verifies credentials, sets the session cookie, and redirects
// to the dashboard. Unknown username and wrong password answer identically.
// POST /admin
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, err := readCredentials(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login user", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.tokenTTL.Seconds()),
	})

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleRegister creates a new user. A duplicate username answers 409 and
// nothing else; every path writes exactly one response.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	username, password, err := readCredentials(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			writeMessage(w, http.StatusConflict, "Username already in use")
		case errors.Is(err, domain.ErrInvalidInput):
			writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("register user", "error", err)
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created",
		"user":    toUserDTO(user),
	})
}

// HandleLogout clears the session cookie and redirects home.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
