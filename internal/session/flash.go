package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSession = "todoweb_flash"

// Notification is a one-shot message shown on the next rendered page.
type Notification struct {
	Status      string // "success", "error", "info"
	Title       string
	Description string
}

func init() {
	// flashes are gob-encoded by securecookie
	gob.Register(Notification{})
}

// Flashes keeps notifications in a signed cookie so they survive a redirect.
type Flashes struct {
	store *sessions.CookieStore
}

// NewFlashes returns a flash store signed with key.
func NewFlashes(key []byte, secure bool) *Flashes {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flashes{store: store}
}

// Add queues n for the next page view. It must run before the response
// header is written.
func (f *Flashes) Add(w http.ResponseWriter, r *http.Request, n Notification) error {
	s, err := f.store.Get(r, flashSession)
	if err != nil && s == nil {
		return err
	}
	s.AddFlash(n)
	return s.Save(r, w)
}

// Pop returns and removes every queued notification. A tampered or expired
// cookie yields none.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []Notification {
	s, err := f.store.Get(r, flashSession)
	if err != nil || s == nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	out := make([]Notification, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(Notification); ok {
			out = append(out, n)
		}
	}
	_ = s.Save(r, w)
	return out
}
