package repository

import (
	"errors"
	"testing"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://localhost:3000", "/todos", "http://localhost:3000/todos"},
		{"http://localhost:3000/", "/todos/4", "http://localhost:3000/todos/4"},
		{"https://api.example.com/v1/", "todos", "https://api.example.com/v1/todos"},
		{"https://api.example.com/v1/", "/user", "https://api.example.com/user"},
	}
	for _, tt := range tests {
		got, err := ResolveURL(tt.base, tt.path)
		if err != nil {
			t.Errorf("ResolveURL(%q, %q) returned error: %v", tt.base, tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestResolveURLConfigurationError(t *testing.T) {
	for _, base := range []string{"", "localhost:3000/api", "/relative", "http://%zz"} {
		_, err := ResolveURL(base, "/todos")
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("ResolveURL(%q) error = %v, want ErrConfiguration", base, err)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Base != base {
			t.Errorf("ResolveURL(%q) error should carry the base value, got %v", base, err)
		}
	}
}
