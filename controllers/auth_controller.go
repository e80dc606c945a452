package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogapp/auth"
	"blogapp/middleware"
	"blogapp/models"
	"blogapp/repository"
	"blogapp/services"
	"blogapp/utils"
)

type AuthController struct {
	users  *services.UserService
	tokens *auth.TokenIssuer
}

func NewAuthController(users *services.UserService, tokens *auth.TokenIssuer) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

type registerForm struct {
	Username        string `form:"username" binding:"required,min=2,max=20"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	Remember        bool   `form:"remember"`
}

type loginForm struct {
	Username string `form:"username" binding:"required,min=2,max=20"`
	Password string `form:"password" binding:"required"`
	Remember bool   `form:"remember"`
}

type forgotPasswordForm struct {
	Email string `form:"email" binding:"required,email"`
}

type resetPasswordForm struct {
	NewPassword        string `form:"new_password" binding:"required"`
	ConfirmNewPassword string `form:"confirm_new_password" binding:"required,eqfield=NewPassword"`
}

func (c *AuthController) startSession(ctx *gin.Context, userID uint, remember bool) error {
	token, err := c.tokens.IssueSessionToken(userID, auth.SessionDuration(remember))
	if err != nil {
		return err
	}
	ctx.SetCookie(auth.SessionCookie, token, auth.CookieMaxAge(remember), "/", "", false, true)
	return nil
}

// safeNext only honors relative return paths; anything else falls back to
// the feed.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "register", "flash": utils.PopFlash(ctx)})
}

func (c *AuthController) Register(ctx *gin.Context) {
	var form registerForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.users.Register(form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		renderFieldError(ctx, "username", "Username is taken. Please choose another one.")
		return
	case errors.Is(err, services.ErrEmailTaken):
		renderFieldError(ctx, "email", "Email is taken. Please choose another one.")
		return
	case err != nil:
		renderError(ctx, err)
		return
	}

	if err := c.startSession(ctx, user.ID, form.Remember); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Your account has been created. You are now logged in!")
	ctx.Redirect(http.StatusFound, "/")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"page":  "login",
		"next":  ctx.Query("next"),
		"flash": utils.PopFlash(ctx),
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var form loginForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.users.Authenticate(form.Username, form.Password)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Username not found", "category": "danger"})
		return
	case errors.Is(err, services.ErrWrongPassword):
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Password did not match", "category": "danger"})
		return
	case err != nil:
		renderError(ctx, err)
		return
	}

	if err := c.startSession(ctx, user.ID, form.Remember); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "You have been logged in!")
	ctx.Redirect(http.StatusFound, safeNext(ctx.Query("next")))
}

func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	utils.SetFlash(ctx, "success", "You are now logged out")
	ctx.Redirect(http.StatusFound, "/")
}

func (c *AuthController) ShowForgotPassword(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "request_password_reset", "flash": utils.PopFlash(ctx)})
}

func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var form forgotPasswordForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.users.RequestPasswordReset(form.Email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderFieldError(ctx, "email", "There is no account with that email.")
		return
	case err != nil:
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Reset link sent to your email", "category": "success"})
}

// resolveResetUser maps the :token parameter to a user: "self" requires an
// authenticated principal, anything else must verify as a reset token.
// Both failures come back as a bare 401.
func (c *AuthController) resolveResetUser(ctx *gin.Context) (*models.User, bool) {
	token := ctx.Param("token")
	if token == "self" {
		principal := middleware.Principal(ctx)
		if principal == nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return nil, false
		}
		return principal, true
	}
	user, err := c.users.VerifyResetToken(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}
	return user, true
}

func (c *AuthController) ShowResetPassword(ctx *gin.Context) {
	if _, ok := c.resolveResetUser(ctx); !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"page": "reset_password", "flash": utils.PopFlash(ctx)})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	user, ok := c.resolveResetUser(ctx)
	if !ok {
		return
	}
	var form resetPasswordForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.users.ResetPassword(user, form.NewPassword); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Password reset successfull!")
	ctx.Redirect(http.StatusFound, "/login")
}
