package session

import (
	"net/http"
	"time"
)

// RefreshCookiePath scopes the refresh cookie to the auth endpoints.
const RefreshCookiePath = "/v1/users/auth"

// Cookies builds the auth cookies with the configured lifetimes.
type Cookies struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c Cookies) Access(value string) http.Cookie {
	return c.cookie(AccessCookie, value, "/", c.AccessTTL)
}

func (c Cookies) Refresh(value string) http.Cookie {
	return c.cookie(RefreshCookie, value, RefreshCookiePath, c.RefreshTTL)
}

// Expired returns cookies that clear both tokens from the browser.
func (c Cookies) Expired() []http.Cookie {
	access := c.cookie(AccessCookie, "", "/", 0)
	refresh := c.cookie(RefreshCookie, "", RefreshCookiePath, 0)
	access.MaxAge, refresh.MaxAge = -1, -1
	access.Expires, refresh.Expires = time.Unix(0, 0), time.Unix(0, 0)
	return []http.Cookie{access, refresh}
}

func (c Cookies) cookie(name, value, path string, ttl time.Duration) http.Cookie {
	return http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
