package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/middleware"
	"blogapp/services"
	"blogapp/utils"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

type commentForm struct {
	Body string `form:"body" binding:"required,max=100"`
}

func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := paramID(ctx)
	if !ok {
		return
	}
	var form commentForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := c.comments.Create(postID, middleware.Principal(ctx), form.Body); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Comment added!")
	ctx.Redirect(http.StatusFound, "/post/"+strconv.FormatUint(uint64(postID), 10))
}

func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := c.comments.Delete(id, middleware.Principal(ctx)); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Your comment has been deleted")
	ctx.Redirect(http.StatusFound, "/")
}
