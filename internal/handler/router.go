package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chetan-code/todoweb/internal/session"
)

// Routes returns the page router.
//
// Public pages:
//   - GET  /                  redirect to the todo list
//   - GET  /auth/login        sign-in form, POST to submit
//   - GET  /auth/register     sign-up form, POST to submit
//   - POST /auth/logout
//   - GET  /healthz
//
// Guarded pages (redirect to /auth/login without a token):
//   - GET  /todos             todo list
//   - GET  /todos/new         new todo form, POST to create
//   - GET  /todos/{id}        todo editor, POST to update
//   - POST /todos/{id}/delete
//   - GET  /user              profile, POST to update
//   - POST /user/delete
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", HomeRedirect)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", h.LoginHandler)
		r.Post("/login", h.LoginHandler)
		r.Get("/register", h.RegisterHandler)
		r.Post("/register", h.RegisterHandler)
		r.Post("/logout", h.LogoutHandler)
	})

	//we will protect them - only a request carrying a token gets through
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.AuthMiddleware(h.TodoListHandler))
		r.Get("/new", h.AuthMiddleware(h.TodoNewHandler))
		r.Post("/new", h.AuthMiddleware(h.TodoNewHandler))
		r.Get("/{id}", h.AuthMiddleware(h.TodoDetailHandler))
		r.Post("/{id}", h.AuthMiddleware(h.TodoDetailHandler))
		r.Post("/{id}/delete", h.AuthMiddleware(h.TodoDeleteHandler))
	})

	r.Get("/user", h.AuthMiddleware(h.UserHandler))
	r.Post("/user", h.AuthMiddleware(h.UserHandler))
	r.Post("/user/delete", h.AuthMiddleware(h.UserDeleteHandler))

	return r
}

func HomeRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, session.ListPath, http.StatusFound)
}
