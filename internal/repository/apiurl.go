package repository

import (
	"errors"
	"net/url"
)

// ResolveURL resolves path against base the way a browser resolves a relative
// reference. base must be an absolute URL.
func ResolveURL(base, path string) (string, error) {
	if base == "" {
		return "", &ConfigurationError{Base: base, Err: errors.New("not set")}
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", &ConfigurationError{Base: base, Err: err}
	}
	if !b.IsAbs() || b.Host == "" {
		return "", &ConfigurationError{Base: base, Err: errors.New("not an absolute URL")}
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(ref).String(), nil
}
