package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/chetan-code/todoweb/internal/models"
	"github.com/chetan-code/todoweb/internal/session"
)

// userForm never carries the password back to the page.
type userForm struct {
	ID        int
	Email     string
	Firstname string
	Name      string
}

type userView struct {
	Found     bool
	CreatedAt string
	Form      userForm
	State     FormState
}

// parseUserForm returns the profile fields, the account creation time carried
// back from the page, and the password with its confirmation.
func parseUserForm(r *http.Request) (form userForm, createdAt, password, confirm string, err error) {
	if err = r.ParseForm(); err != nil {
		return userForm{}, "", "", "", err
	}
	form = userForm{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Firstname: strings.TrimSpace(r.PostFormValue("firstname")),
		Name:      strings.TrimSpace(r.PostFormValue("name")),
	}
	form.ID, err = strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		return userForm{}, "", "", "", fmt.Errorf("id: %w", err)
	}
	return form, r.PostFormValue("created_at"), r.PostFormValue("password"), r.PostFormValue("confirm"), nil
}

// UserHandler shows the profile on GET and updates it on POST.
func (h *Handler) UserHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if r.Method == http.MethodGet {
		view := userView{}
		var notice *Notice
		user, err := h.api.FetchUser(r.Context(), sess.Token)
		if err != nil {
			slog.Error("user_fetch_failed", "error", err)
			notice = h.fetchNotice(err, "account")
		} else {
			view.Found = true
			view.CreatedAt = user.CreatedAt
			view.Form = userForm{ID: user.ID, Email: user.Email, Firstname: user.Firstname, Name: user.Name}
		}
		h.render(w, r, sess, page{Template: "user.html", Title: "User Data", Notice: notice, Data: view})
		return
	}

	form, createdAt, password, confirm, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	state := submit("user_update", func() error {
		if password != confirm {
			return errPasswordMismatch
		}
		return h.api.UpdateUser(r.Context(), sess.Token, form.ID, models.UserInput{
			Email:     form.Email,
			Password:  password,
			Firstname: form.Firstname,
			Name:      form.Name,
		})
	})
	if state.Phase == PhaseSucceeded {
		h.flash(w, r, "User Updated.", fmt.Sprintf("User %s %s has been updated.", form.Name, form.Firstname))
		http.Redirect(w, r, "/user", http.StatusSeeOther)
		return
	}
	h.renderUserFailure(w, r, sess, form, createdAt, state)
}

// UserDeleteHandler deletes the account. The notification is queued before the
// token is dropped so the register page can show it.
func (h *Handler) UserDeleteHandler(w http.ResponseWriter, r *http.Request, sess session.Session) {
	form, createdAt, _, _, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	state := submit("user_delete", func() error {
		return h.api.DeleteUser(r.Context(), sess.Token, form.ID)
	})
	if state.Phase == PhaseSucceeded {
		h.flash(w, r, "User Deleted.", fmt.Sprintf("User %s %s has been deleted.", form.Name, form.Firstname))
		h.cookies.ClearToken(w)
		http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		return
	}
	h.renderUserFailure(w, r, sess, form, createdAt, state)
}

func (h *Handler) renderUserFailure(w http.ResponseWriter, r *http.Request, sess session.Session, form userForm, createdAt string, state FormState) {
	h.render(w, r, sess, page{
		Template: "user.html",
		Title:    "User Data",
		Status:   http.StatusUnprocessableEntity,
		Data:     userView{Found: true, CreatedAt: createdAt, Form: form, State: state},
	})
}
