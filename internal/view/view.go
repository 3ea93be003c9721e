// Package view renders pages for the admin surface. Components implement
// templ.Component: they take a data bag plus domain data and write a
// document. Handlers never build markup themselves.
package view

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/mvaldren/inkwell/internal/domain"
)

// Bag carries the page-level fields every layout receives.
type Bag struct {
	Title       string
	Description string
}

func layout(bag Bag, body func(w io.Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><meta name="description" content="%s"></head><body>`,
			html.EscapeString(bag.Title), html.EscapeString(bag.Description))
		body(w)
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// LoginPage renders the admin login form.
func LoginPage(bag Bag) templ.Component {
	return layout(bag, func(w io.Writer) {
		io.WriteString(w, `<h1>`+html.EscapeString(bag.Title)+`</h1>`)
		io.WriteString(w, `<form method="post" action="/admin">`+
			`<label>Username <input type="text" name="username" required></label>`+
			`<label>Password <input type="password" name="password" required></label>`+
			`<button type="submit">Sign In</button></form>`)
	})
}

// HomePage renders the public home page with the post list.
func HomePage(bag Bag, posts []domain.Post, username string) templ.Component {
	return layout(bag, func(w io.Writer) {
		io.WriteString(w, `<h1>`+html.EscapeString(bag.Title)+`</h1>`)
		if username != "" {
			fmt.Fprintf(w, `<p>Signed in as %s — <a href="/dashboard">dashboard</a></p>`, html.EscapeString(username))
		}
		io.WriteString(w, `<ul>`)
		for _, p := range posts {
			fmt.Fprintf(w, `<li><article><h2>%s</h2><p>%s</p></article></li>`,
				html.EscapeString(p.Title), html.EscapeString(p.Body))
		}
		io.WriteString(w, `</ul>`)
	})
}

// DashboardPage renders the admin post list.
func DashboardPage(bag Bag, username string, posts []domain.Post) templ.Component {
	return layout(bag, func(w io.Writer) {
		fmt.Fprintf(w, `<h1>%s</h1><p>Signed in as %s — <a href="/logout">log out</a></p>`,
			html.EscapeString(bag.Title), html.EscapeString(username))
		io.WriteString(w, `<p><a href="/add-post">Add Post</a></p>`)
		writePostTable(w, posts)
	})
}

// PostTableFragment renders the dashboard's post table on its own, for
// partial updates over SSE.
func PostTableFragment(posts []domain.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writePostTable(w, posts)
		return nil
	})
}

func writePostTable(w io.Writer, posts []domain.Post) {
	io.WriteString(w, `<table id="post-table"><thead><tr><th>Title</th><th>Updated</th><th></th></tr></thead><tbody>`)
	for _, p := range posts {
		fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td>`+
			`<td><a href="/edit-post/%d">edit</a></td></tr>`,
			html.EscapeString(p.Title), p.UpdatedAt.Format("2006-01-02 15:04"), p.ID)
	}
	io.WriteString(w, `</tbody></table>`)
}

// AddPostPage renders the post creation form.
func AddPostPage(bag Bag, username string) templ.Component {
	return layout(bag, func(w io.Writer) {
		fmt.Fprintf(w, `<h1>%s</h1><p>Signed in as %s</p>`,
			html.EscapeString(bag.Title), html.EscapeString(username))
		io.WriteString(w, `<form method="post" action="/add-post">`+
			`<label>Title <input type="text" name="title" required></label>`+
			`<label>Body <textarea name="body"></textarea></label>`+
			`<button type="submit">Create</button></form>`)
	})
}

// EditPostPage renders the edit form pre-filled with the post's fields.
func EditPostPage(bag Bag, username string, post *domain.Post) templ.Component {
	return layout(bag, func(w io.Writer) {
		fmt.Fprintf(w, `<h1>%s</h1><p>Signed in as %s</p>`,
			html.EscapeString(bag.Title), html.EscapeString(username))
		fmt.Fprintf(w, `<form method="post" action="/edit-post/%d">`, post.ID)
		io.WriteString(w, `<input type="hidden" name="_method" value="PUT">`)
		fmt.Fprintf(w, `<label>Title <input type="text" name="title" value="%s" required></label>`,
			html.EscapeString(post.Title))
		fmt.Fprintf(w, `<label>Body <textarea name="body">%s</textarea></label>`,
			html.EscapeString(post.Body))
		io.WriteString(w, `<button type="submit">Save</button></form>`)
		fmt.Fprintf(w, `<form method="post" action="/delete-post/%d">`+
			`<input type="hidden" name="_method" value="DELETE">`+
			`<button type="submit">Delete</button></form>`, post.ID)
	})
}
