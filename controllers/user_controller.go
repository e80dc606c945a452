package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/middleware"
	"blogapp/services"
	"blogapp/utils"
)

type UserController struct {
	users  *services.UserService
	posts  *services.PostService
	images *services.ImageService
}

func NewUserController(users *services.UserService, posts *services.PostService, images *services.ImageService) *UserController {
	return &UserController{users: users, posts: posts, images: images}
}

type profileForm struct {
	Username string `form:"username" binding:"required,min=2,max=20"`
	Email    string `form:"email" binding:"required,email"`
}

func (c *UserController) Profile(ctx *gin.Context) {
	user := middleware.Principal(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"email":      user.Email,
		"image_file": user.ImageFile,
		"flash":      utils.PopFlash(ctx),
	})
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := middleware.Principal(ctx)

	var form profileForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Optional picture: pushed to the hosting service, URL stored on the user.
	var imageURL string
	if header, err := ctx.FormFile("picture"); err == nil {
		picture, err := header.Open()
		if err != nil {
			renderError(ctx, err)
			return
		}
		defer picture.Close()
		imageURL, err = c.images.Upload(header.Filename, picture)
		if err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "picture upload failed"})
			return
		}
	}

	err := c.users.UpdateProfile(user, form.Username, form.Email, imageURL)
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
	utils.SetFlash(ctx, "success", "Your account has been updated")
	ctx.Redirect(http.StatusFound, "/profile")
}

// UserPosts renders an author's posts, paginated like the feed.
func (c *UserController) UserPosts(ctx *gin.Context) {
	user, err := c.users.ByUsername(ctx.Param("username"))
	if err != nil {
		renderError(ctx, err)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	posts, total, err := c.posts.ByAuthor(user.ID, page)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username":   user.Username,
			"image_file": user.ImageFile,
		},
		"posts":    posts,
		"page":     page,
		"per_page": services.PostsPerPage,
		"total":    total,
	})
}
