package session

import "net/http"

// Paths the guards send users to.
const (
	LoginPath = "/auth/login"
	ListPath  = "/todos"
)

// Redirect tells the caller to send the browser elsewhere instead of
// rendering the page.
type Redirect struct {
	Destination string
	Permanent   bool
}

// Status is the HTTP status for the redirect. A non-permanent redirect uses 302
// so browsers re-check on every visit and a POST is never replayed.
func (r *Redirect) Status() int {
	if r.Permanent {
		return http.StatusPermanentRedirect
	}
	return http.StatusFound
}

// CheckAuthenticated returns a redirect to the login page when s has no token,
// nil otherwise. The token itself is not validated; the API does that on
// every call.
func CheckAuthenticated(s Session) *Redirect {
	if s.Authenticated() {
		return nil
	}
	return &Redirect{Destination: LoginPath}
}

// CheckAnonymous is the inverse guard used by the login and register pages.
func CheckAnonymous(s Session) *Redirect {
	if !s.Authenticated() {
		return nil
	}
	return &Redirect{Destination: ListPath}
}
