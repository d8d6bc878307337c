package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chetan-code/todoweb/internal/config"
	"github.com/chetan-code/todoweb/internal/models"
	"github.com/chetan-code/todoweb/internal/repository"
	"github.com/chetan-code/todoweb/internal/session"
)

// API is the remote todo service as the pages use it. *repository.Client
// implements it.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) (string, error)

	FetchTodos(ctx context.Context, token string) ([]models.Todo, error)
	FetchTodo(ctx context.Context, token string, id int) (*models.Todo, error)
	CreateTodo(ctx context.Context, token string, in models.TodoInput) error
	UpdateTodo(ctx context.Context, token string, id int, in models.TodoInput) error
	DeleteTodo(ctx context.Context, token string, id int) error

	FetchUser(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id int, in models.UserInput) error
	DeleteUser(ctx context.Context, token string, id int) error
}

var _ API = (*repository.Client)(nil)

type Handler struct {
	api         API
	cookies     session.Cookies
	flashes     *session.Flashes
	renderer    *renderer
	fetchErrors config.FetchErrors
}

func NewHandler(api API, cfg *config.Config) *Handler {
	return &Handler{
		api:         api,
		cookies:     session.Cookies{Secure: cfg.CookieSecure},
		flashes:     session.NewFlashes(cfg.SessionKey, cfg.CookieSecure),
		renderer:    newRenderer(),
		fetchErrors: cfg.FetchErrors,
	}
}

// flash queues a notification for the next page. Losing one is not worth
// failing the request over.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, title, description string) {
	n := session.Notification{Status: "success", Title: title, Description: description}
	if err := h.flashes.Add(w, r, n); err != nil {
		slog.Warn("flash_save_failed", "title", title, "error", err)
	}
}

// fetchNotice turns a failed page fetch into a banner, or nil when the policy
// is to stay silent. The failure itself is always logged by the caller.
func (h *Handler) fetchNotice(err error, resource string) *Notice {
	if h.fetchErrors == config.FetchErrorsSilent {
		return nil
	}
	var apiErr *repository.APIError
	var netErr *repository.NetworkError
	switch {
	case errors.As(err, &apiErr) && apiErr.NotFound():
		return &Notice{Kind: "not_found", Message: "The requested " + resource + " could not be found."}
	case errors.As(err, &apiErr) && apiErr.Unauthorized():
		return &Notice{Kind: "unauthorized", Message: "The server rejected your session. Log out to sign in again."}
	case errors.As(err, &netErr):
		return &Notice{Kind: "unreachable", Message: "The todo service is unreachable right now. Please try again later."}
	default:
		return &Notice{Kind: "error", Message: repository.UserMessage(err)}
	}
}
