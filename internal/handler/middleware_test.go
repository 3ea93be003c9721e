package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mvaldren/inkwell/internal/handler"
	"github.com/mvaldren/inkwell/internal/repository/sqlite"
	"github.com/mvaldren/inkwell/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *service.PostService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Cost 4 keeps the tests fast.
	return service.NewAuthService(db.Users(), testJWTSecret, 4, time.Hour),
		service.NewPostService(db.Posts())
}

func registerAndLogin(t *testing.T, auth *service.AuthService, username, password string) string {
	t.Helper()
	ctx := context.Background()
	if _, err := auth.Register(ctx, username, password); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := auth.Login(ctx, username, password)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return token
}

func formBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth, _ := newTestServices(t)
	token := registerAndLogin(t, auth, "valid", "password123")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid" {
		t.Fatalf("expected user 'valid', got %q", gotUser)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	auth, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	auth, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "invalid.jwt.token"})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	// Regression: a bad token must produce a 401, never a hanging request.
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	auth, _ := newTestServices(t)
	token := registerAndLogin(t, auth, "tamper", "password123")

	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tampered})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalAuth_WithToken(t *testing.T) {
	auth, _ := newTestServices(t)
	token := registerAndLogin(t, auth, "opt", "password123")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "opt" {
		t.Fatalf("expected user 'opt', got %q", gotUser)
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	auth, _ := newTestServices(t)

	var sawNilUser bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawNilUser = handler.UserFromContext(r.Context()) == nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sawNilUser {
		t.Fatal("expected nil user in context for unauthenticated request")
	}
}

func TestMethodOverride(t *testing.T) {
	var gotMethod string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/edit-post/1",
		formBody("_method=PUT&title=t&body=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.MethodOverride(inner).ServeHTTP(w, req)

	if gotMethod != http.MethodPut {
		t.Fatalf("expected method PUT after override, got %s", gotMethod)
	}
}

func TestMethodOverride_PlainPostUntouched(t *testing.T) {
	var gotMethod string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/add-post",
		formBody("title=t&body=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.MethodOverride(inner).ServeHTTP(w, req)

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST to pass through, got %s", gotMethod)
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
