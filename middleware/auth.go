package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"blogapp/auth"
	"blogapp/models"
	"blogapp/repository"
)

const principalKey = "principal"

// Principal returns the authenticated user for this request, or nil.
func Principal(ctx *gin.Context) *models.User {
	if v, ok := ctx.Get(principalKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// ResolvePrincipal loads the user behind the session cookie. Absent, invalid
// or stale cookies leave the request anonymous; rejection happens later at
// RequireLogin, not here.
func ResolvePrincipal(tokens *auth.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			ctx.Next()
			return
		}
		userID, err := tokens.VerifySessionToken(token)
		if err != nil {
			ctx.Next()
			return
		}
		user, err := users.ByID(userID)
		if err != nil {
			ctx.Next()
			return
		}
		ctx.Set(principalKey, user)
		ctx.Next()
	}
}

// RequireLogin bounces anonymous callers to the login form, carrying the
// requested path so a successful login can return them.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if Principal(ctx) == nil {
			next := url.QueryEscape(ctx.Request.URL.RequestURI())
			ctx.Redirect(http.StatusFound, "/login?next="+next)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// RedirectIfAuthenticated keeps logged-in users off the anon-only pages
// (login, register, forgot-password).
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if Principal(ctx) != nil {
			ctx.Redirect(http.StatusFound, "/")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
