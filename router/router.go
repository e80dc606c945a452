package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blogapp/auth"
	"blogapp/controllers"
	"blogapp/middleware"
	"blogapp/repository"
)

// Handlers bundles the controllers the route table mounts.
type Handlers struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Posts    *controllers.PostController
	Comments *controllers.CommentController
	Likes    *controllers.LikeController
}

// Setup builds the engine: CORS, principal resolution, then the route table.
func Setup(tokens *auth.TokenIssuer, users repository.UserRepository, h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.ResolvePrincipal(tokens, users))

	r.GET("/", h.Posts.Home)
	r.GET("/about", h.Posts.About)
	r.GET("/user/:username", h.Users.UserPosts)
	r.GET("/post/:id", h.Posts.ShowPost)
	r.GET("/posts/top", h.Posts.TopPosts)

	anon := r.Group("", middleware.RedirectIfAuthenticated())
	{
		anon.GET("/register", h.Auth.ShowRegister)
		anon.POST("/register", h.Auth.Register)
		anon.GET("/login", h.Auth.ShowLogin)
		anon.POST("/login", h.Auth.Login)
		anon.GET("/forgotpassword", h.Auth.ShowForgotPassword)
		anon.POST("/forgotpassword", h.Auth.ForgotPassword)
	}

	// Token-verified or self-authenticated; guarded inside the handler.
	r.GET("/resetpassword/:token", h.Auth.ShowResetPassword)
	r.POST("/resetpassword/:token", h.Auth.ResetPassword)

	authed := r.Group("", middleware.RequireLogin())
	{
		authed.GET("/logout", h.Auth.Logout)
		authed.GET("/profile", h.Users.Profile)
		authed.POST("/profile", h.Users.UpdateProfile)
		authed.GET("/post/new", h.Posts.ShowNewPost)
		authed.POST("/post/new", h.Posts.CreatePost)
		authed.GET("/post/:id/update", h.Posts.EditPost)
		authed.POST("/post/:id/update", h.Posts.UpdatePost)
		authed.POST("/post/:id/delete", h.Posts.DeletePost)
		authed.POST("/post/:id/like", h.Likes.LikePost)
		authed.POST("/post/:id/comment", h.Comments.CreateComment)
		authed.POST("/comment/:id/like", h.Likes.LikeComment)
		authed.POST("/comment/:id/delete", h.Comments.DeleteComment)
	}

	return r
}
