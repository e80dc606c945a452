package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapp/middleware"
	"blogapp/services"
)

type LikeController struct {
	likes *services.LikeService
}

func NewLikeController(likes *services.LikeService) *LikeController {
	return &LikeController{likes: likes}
}

// LikePost toggles the caller's like on a post and reports the new state.
func (c *LikeController) LikePost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	liked, count, err := c.likes.TogglePost(id, middleware.Principal(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	message := "Like removed"
	if liked {
		message = "Successfully liked the post"
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "likes": count})
}

// LikeComment is the comment-target twin of LikePost.
func (c *LikeController) LikeComment(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	liked, count, err := c.likes.ToggleComment(id, middleware.Principal(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	message := "Like removed"
	if liked {
		message = "Successfully liked the comment"
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message, "liked": liked, "likes": count})
}
