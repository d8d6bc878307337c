package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/chetan-code/todoweb/internal/models"
	"github.com/chetan-code/todoweb/internal/session"
)

type todoListView struct {
	Name  string
	Todos []models.Todo
}

// todoForm is the editable copy of a todo. UserID and DueTime travel as
// hidden fields so an update can send them back unchanged.
type todoForm struct {
	Title       string
	Description string
	Status      models.Status
	UserID      int
	DueTime     string
}

type todoDetailView struct {
	ID       int
	Found    bool
	Form     todoForm
	State    FormState
	Statuses []models.Status
}

type todoNewView struct {
	Form     todoForm
	State    FormState
	Statuses []models.Status
}

func formFromTodo(t *models.Todo) todoForm {
	return todoForm{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		DueTime:     t.DueTime,
	}
}

// parseTodoForm reads the editor fields. Hidden fields that fail to parse are
// left zero; the API rejects what it does not accept.
func parseTodoForm(r *http.Request) (todoForm, error) {
	if err := r.ParseForm(); err != nil {
		return todoForm{}, err
	}
	f := todoForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: r.PostFormValue("description"),
		Status:      models.Status(r.PostFormValue("status")),
		DueTime:     r.PostFormValue("due_time"),
	}
	if v := r.PostFormValue("user_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return todoForm{}, fmt.Errorf("user_id: %w", err)
		}
		f.UserID = id
	}
	return f, nil
}

func (f todoForm) input() models.TodoInput {
	return models.TodoInput{
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		UserID:      f.UserID,
		DueTime:     models.FormatSQLDate(f.DueTime),
	}
}

// todoID reads the {id} route parameter.
func todoID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) TodoListHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	var notice *Notice
	todos, err := h.api.FetchTodos(r.Context(), sess.Token)
	if err != nil {
		slog.Error("todo_list_fetch_failed", "path", r.URL.Path, "error", err)
		notice = h.fetchNotice(err, "todo list")
		todos = nil
	}

	h.render(w, r, sess, page{
		Template: "todos/list.html",
		Title:    "All Todos",
		Notice:   notice,
		Data:     todoListView{Name: "All Todos", Todos: todos},
	})
}

// TodoDetailHandler shows the editor on GET and applies an update on POST.
func (h *Handler) TodoDetailHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	id, ok := todoID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		view := todoDetailView{ID: id, Statuses: models.Statuses}
		var notice *Notice
		todo, err := h.api.FetchTodo(r.Context(), sess.Token, id)
		if err != nil {
			slog.Error("todo_fetch_failed", "id", id, "error", err)
			notice = h.fetchNotice(err, "todo")
		} else {
			view.Found = true
			view.Form = formFromTodo(todo)
		}
		h.render(w, r, sess, page{
			Template: "todos/detail.html",
			Title:    fmt.Sprintf("Todo n°%d", id),
			Notice:   notice,
			Data:     view,
		})

	case http.MethodPost:
		form, err := parseTodoForm(r)
		if err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		state := submit("todo_update", func() error {
			return h.api.UpdateTodo(r.Context(), sess.Token, id, form.input())
		})
		if state.Phase == PhaseSucceeded {
			h.flash(w, r, "Todo Updated.", "Todo has been updated.")
			http.Redirect(w, r, fmt.Sprintf("/todos/%d", id), http.StatusSeeOther)
			return
		}
		h.renderTodoFailure(w, r, sess, id, form, state)
	}
}

// TodoDeleteHandler deletes the todo and goes back to the list, where the
// todo no longer appears.
func (h *Handler) TodoDeleteHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	id, ok := todoID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	// the delete button posts the editor's fields so a failure can re-render them
	form, err := parseTodoForm(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	state := submit("todo_delete", func() error {
		return h.api.DeleteTodo(r.Context(), sess.Token, id)
	})
	if state.Phase == PhaseSucceeded {
		h.flash(w, r, "Todo Deleted.", fmt.Sprintf("Todo n°%d has been deleted.", id))
		http.Redirect(w, r, session.ListPath, http.StatusSeeOther)
		return
	}
	h.renderTodoFailure(w, r, sess, id, form, state)
}

func (h *Handler) renderTodoFailure(w http.ResponseWriter, r *http.Request, sess session.Session, id int, form todoForm, state FormState) {
	h.render(w, r, sess, page{
		Template: "todos/detail.html",
		Title:    fmt.Sprintf("Todo n°%d", id),
		Status:   http.StatusUnprocessableEntity,
		Data: todoDetailView{
			ID:       id,
			Found:    true,
			Form:     form,
			State:    state,
			Statuses: models.Statuses,
		},
	})
}

// TodoNewHandler shows the creation form on GET and creates the todo on POST.
// The owner is the account behind the token.
func (h *Handler) TodoNewHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if r.Method == http.MethodGet {
		h.render(w, r, sess, page{
			Template: "todos/new.html",
			Title:    "New Todo",
			Data: todoNewView{
				Form:     todoForm{Status: models.StatusNotStarted},
				Statuses: models.Statuses,
			},
		})
		return
	}

	form, err := parseTodoForm(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	state := submit("todo_create", func() error {
		user, err := h.api.FetchUser(r.Context(), sess.Token)
		if err != nil {
			return err
		}
		form.UserID = user.ID
		return h.api.CreateTodo(r.Context(), sess.Token, form.input())
	})
	if state.Phase == PhaseSucceeded {
		h.flash(w, r, "Todo Created.", fmt.Sprintf("Todo %q has been created.", form.Title))
		http.Redirect(w, r, session.ListPath, http.StatusSeeOther)
		return
	}

	h.render(w, r, sess, page{
		Template: "todos/new.html",
		Title:    "New Todo",
		Status:   http.StatusUnprocessableEntity,
		Data:     todoNewView{Form: form, State: state, Statuses: models.Statuses},
	})
}
