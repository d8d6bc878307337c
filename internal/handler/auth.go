package handler

import (
	"net/http"
	"strings"

	"github.com/chetan-code/todoweb/internal/models"
	"github.com/chetan-code/todoweb/internal/session"
)

// guardedFunc is a page handler that has already passed the auth-guard. The
// session is handed over explicitly rather than read from the request again.
type guardedFunc func(w http.ResponseWriter, r *http.Request, sess session.Session)

// AuthMiddleware runs the auth-guard before next. Without a token the browser
// is sent to the login page and next never runs.
func (h *Handler) AuthMiddleware(next guardedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := h.cookies.Read(r)
		if redirect := session.CheckAuthenticated(sess); redirect != nil {
			http.Redirect(w, r, redirect.Destination, redirect.Status())
			return
		}
		next(w, r, sess)
	}
}

type loginView struct {
	Email string
	State FormState
}

type registerView struct {
	Email     string
	Firstname string
	Name      string
	State     FormState
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	sess := h.cookies.Read(r)
	if redirect := session.CheckAnonymous(sess); redirect != nil {
		http.Redirect(w, r, redirect.Destination, redirect.Status())
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, sess, page{Template: "auth/login.html", Title: "Sign-In", Data: loginView{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	var token string
	state := submit("login", func() error {
		t, err := h.api.Login(r.Context(), creds)
		if err != nil {
			return err
		}
		if t == "" {
			return errNoToken
		}
		token = t
		return nil
	})
	if state.Phase == PhaseSucceeded {
		h.cookies.SetToken(w, token)
		http.Redirect(w, r, session.ListPath, http.StatusSeeOther)
		return
	}

	h.render(w, r, sess, page{
		Template: "auth/login.html",
		Title:    "Sign-In",
		Status:   http.StatusUnprocessableEntity,
		Data:     loginView{Email: creds.Email, State: state},
	})
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	sess := h.cookies.Read(r)
	if redirect := session.CheckAnonymous(sess); redirect != nil {
		http.Redirect(w, r, redirect.Destination, redirect.Status())
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, sess, page{Template: "auth/register.html", Title: "Sign-Up", Data: registerView{}})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	reg := models.Registration{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		Password:  r.PostFormValue("password"),
		Firstname: strings.TrimSpace(r.PostFormValue("firstname")),
		Name:      strings.TrimSpace(r.PostFormValue("name")),
	}

	var token string
	state := submit("register", func() error {
		t, err := h.api.Register(r.Context(), reg)
		if err != nil {
			return err
		}
		if t == "" {
			return errNoToken
		}
		token = t
		return nil
	})
	if state.Phase == PhaseSucceeded {
		h.cookies.SetToken(w, token)
		http.Redirect(w, r, session.ListPath, http.StatusSeeOther)
		return
	}

	h.render(w, r, sess, page{
		Template: "auth/register.html",
		Title:    "Sign-Up",
		Status:   http.StatusUnprocessableEntity,
		Data: registerView{
			Email:     reg.Email,
			Firstname: reg.Firstname,
			Name:      reg.Name,
			State:     state,
		},
	})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	// clear session cookie
	h.cookies.ClearToken(w)
	h.flash(w, r, "Logged out.", "You have been signed out.")
	http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
}
