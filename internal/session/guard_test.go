package session

import (
	"net/http"
	"testing"
)

func TestCheckAuthenticated(t *testing.T) {
	r := CheckAuthenticated(Session{})
	if r == nil {
		t.Fatal("expected a redirect for a session without token")
	}
	if r.Destination != LoginPath {
		t.Errorf("expected destination %s, got %s", LoginPath, r.Destination)
	}
	if r.Permanent {
		t.Error("login redirect must not be permanent")
	}
	if r.Status() != http.StatusFound {
		t.Errorf("expected status 302, got %d", r.Status())
	}

	for _, token := range []string{"x", "not-a-jwt", "a.b.c"} {
		if r := CheckAuthenticated(Session{Token: token}); r != nil {
			t.Errorf("token %q: expected no redirect, got %+v", token, r)
		}
	}
}

func TestCheckAnonymous(t *testing.T) {
	if r := CheckAnonymous(Session{}); r != nil {
		t.Errorf("expected no redirect without token, got %+v", r)
	}
	r := CheckAnonymous(Session{Token: "x"})
	if r == nil || r.Destination != ListPath {
		t.Errorf("expected redirect to %s, got %+v", ListPath, r)
	}
}

func TestRedirectPermanentStatus(t *testing.T) {
	r := &Redirect{Destination: "/", Permanent: true}
	if r.Status() != http.StatusPermanentRedirect {
		t.Errorf("expected 308, got %d", r.Status())
	}
}
