package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mvaldren/inkwell/internal/domain"
	"github.com/mvaldren/inkwell/internal/service"
	"github.com/mvaldren/inkwell/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// PostHandler handles post management HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleHome renders the public home page with all posts.
// GET /
func (h *PostHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts for home", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	username := ""
	if user := UserFromContext(r.Context()); user != nil {
		username = user.Username
	}

	view.HomePage(view.Bag{Title: "Home", Description: siteDescription}, posts, username).Render(r.Context(), w)
}

// HandleDashboard renders the admin post list.
// GET /dashboard
func (h *PostHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts for dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.DashboardPage(view.Bag{Title: "Dashboard", Description: siteDescription}, user.Username, posts).Render(r.Context(), w)
}

// HandleDashboardPosts patches the dashboard's post table via SSE so the
// list refreshes without a full page load.
// GET /dashboard/posts
func (h *PostHandler) HandleDashboardPosts(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts for refresh", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.PostTableFragment(posts))
}

// HandleAddPostPage renders the post creation form.
// GET /add-post
func (h *PostHandler) HandleAddPostPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	view.AddPostPage(view.Bag{Title: "Add Post", Description: siteDescription}, user.Username).Render(r.Context(), w)
}

// HandleAddPost creates a post from the submitted form and redirects to the
// dashboard.
// POST /add-post
func (h *PostHandler) HandleAddPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form")
		return
	}

	_, err := h.posts.Create(r.Context(), r.PostForm.Get("title"), r.PostForm.Get("body"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeMessage(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleEditPostPage renders the edit form for an existing post.
// GET /edit-post/{id}
func (h *PostHandler) HandleEditPostPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("get post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.EditPostPage(view.Bag{Title: "Edit Post", Description: siteDescription}, user.Username, post).Render(r.Context(), w)
}

// HandleUpdatePost replaces a post's title and body and redirects back to
// the edit form. Updating an absent id is a no-op.
// PUT /edit-post/{id}
func (h *PostHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form")
		return
	}

	if err := h.posts.Update(r.Context(), id, r.PostForm.Get("title"), r.PostForm.Get("body")); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeMessage(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", id), http.StatusSeeOther)
}

// HandleDeletePost deletes a post and redirects to the dashboard. Deleting
// an absent id is a no-op.
// DELETE /delete-post/{id}
func (h *PostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		slog.Error("delete post", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
