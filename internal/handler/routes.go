package handler

import (
	"net/http"
	"time"

	"github.com/mvaldren/inkwell/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, posts *service.PostService, cookieSecure bool, tokenTTL time.Duration) {
	authH := NewAuthHandler(auth, cookieSecure, tokenTTL)
	postH := NewPostHandler(posts)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /", OptionalAuth(auth, http.HandlerFunc(postH.HandleHome)))

	mux.HandleFunc("GET /admin", authH.HandleLoginPage)
	mux.HandleFunc("POST /admin", authH.HandleLogin)
	mux.HandleFunc("POST /register", authH.HandleRegister)
	mux.HandleFunc("GET /logout", authH.HandleLogout)

	mux.Handle("GET /dashboard", RequireAuth(auth, http.HandlerFunc(postH.HandleDashboard)))
	mux.Handle("GET /dashboard/posts", RequireAuth(auth, http.HandlerFunc(postH.HandleDashboardPosts)))
	mux.Handle("GET /add-post", RequireAuth(auth, http.HandlerFunc(postH.HandleAddPostPage)))
	mux.Handle("POST /add-post", RequireAuth(auth, http.HandlerFunc(postH.HandleAddPost)))
	mux.Handle("GET /edit-post/{id}", RequireAuth(auth, http.HandlerFunc(postH.HandleEditPostPage)))
	mux.Handle("PUT /edit-post/{id}", RequireAuth(auth, http.HandlerFunc(postH.HandleUpdatePost)))
	mux.Handle("DELETE /delete-post/{id}", RequireAuth(auth, http.HandlerFunc(postH.HandleDeletePost)))
}
