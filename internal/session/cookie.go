package session

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chetan-code/todoweb/internal/models"
)

// TokenCookie is the cookie holding the bearer token.
const TokenCookie = "token"

// Session is the caller's credential for one request. It is read once from the
// cookie and then handed explicitly to whatever needs it.
type Session struct {
	Token string
}

func (s Session) Authenticated() bool { return s.Token != "" }

// Claims decodes the token's payload without checking its signature. ok is
// false when the token is not a JWT.
func (s Session) Claims() (claims *models.Claims, ok bool) {
	if s.Token == "" {
		return nil, false
	}
	claims = &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return nil, false
	}
	return claims, true
}

// Cookies reads and writes the token cookie.
type Cookies struct {
	Secure bool
}

// Read returns the session carried by r. A missing cookie is an anonymous session.
func (c Cookies) Read(r *http.Request) Session {
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return Session{}
	}
	return Session{Token: cookie.Value}
}

// SetToken stores token for the browser session; no expiry is set.
func (c Cookies) SetToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true, //not visible to JS
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c Cookies) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
