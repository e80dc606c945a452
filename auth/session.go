package auth

import "time"

// SessionCookie carries the signed session token.
const SessionCookie = "session"

const (
	// SessionTTL bounds a plain login; the cookie itself dies with the
	// browser session.
	SessionTTL = 24 * time.Hour
	// RememberTTL applies when "remember me" is checked; the cookie gets a
	// matching MaxAge so it survives browser restarts.
	RememberTTL = 30 * 24 * time.Hour
)

// SessionDuration picks the token lifetime for a login.
func SessionDuration(remember bool) time.Duration {
	if remember {
		return RememberTTL
	}
	return SessionTTL
}

// CookieMaxAge returns the session cookie MaxAge in seconds: zero keeps the
// cookie session-scoped, remember-me pins it to the token lifetime.
func CookieMaxAge(remember bool) int {
	if remember {
		return int(RememberTTL / time.Second)
	}
	return 0
}
