package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/middleware"
	"blogapp/services"
	"blogapp/utils"
)

type PostController struct {
	posts    *services.PostService
	comments *services.CommentService
	likes    *services.LikeService
}

func NewPostController(posts *services.PostService, comments *services.CommentService, likes *services.LikeService) *PostController {
	return &PostController{posts: posts, comments: comments, likes: likes}
}

type postForm struct {
	Title   string `form:"title" binding:"required,max=100"`
	Content string `form:"content" binding:"required"`
}

// Home is the paginated feed, newest first, 5 per page.
func (c *PostController) Home(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	posts, total, err := c.posts.Feed(page)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"posts":    posts,
		"page":     page,
		"per_page": services.PostsPerPage,
		"total":    total,
		"flash":    utils.PopFlash(ctx),
	})
}

func (c *PostController) About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "about"})
}

func (c *PostController) ShowNewPost(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "create_post", "flash": utils.PopFlash(ctx)})
}

func (c *PostController) CreatePost(ctx *gin.Context) {
	var form postForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := c.posts.Create(middleware.Principal(ctx), form.Title, form.Content); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Post Created!")
	ctx.Redirect(http.StatusFound, "/")
}

// ShowPost renders the post with its comments and like state/count.
func (c *PostController) ShowPost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	post, err := c.posts.Get(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	comments, err := c.comments.ForPost(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	count, err := c.likes.PostLikeCount(id)
	if err != nil {
		renderError(ctx, err)
		return
	}

	liked := false
	if principal := middleware.Principal(ctx); principal != nil {
		liked, err = c.likes.PostLikedBy(id, principal.ID)
		if err != nil {
			renderError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"likes":    count,
		"liked":    liked,
		"flash":    utils.PopFlash(ctx),
	})
}

// EditPost pre-populates the update form; same owner-or-admin gate as the
// update itself.
func (c *PostController) EditPost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	post, err := c.posts.Get(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	principal := middleware.Principal(ctx)
	if post.UserID != principal.ID && !principal.Admin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"page":    "update_post",
		"title":   post.Title,
		"content": post.Content,
	})
}

func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var form postForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := c.posts.Update(id, middleware.Principal(ctx), form.Title, form.Content)
	if err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Post has been updated!")
	ctx.Redirect(http.StatusFound, "/post/"+strconv.FormatUint(uint64(post.ID), 10))
}

func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := c.posts.Delete(id, middleware.Principal(ctx)); err != nil {
		renderError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Your post has been deleted")
	ctx.Redirect(http.StatusFound, "/")
}

// TopPosts returns the like-rank leaderboard.
func (c *PostController) TopPosts(ctx *gin.Context) {
	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}
	list, err := c.likes.TopPosts(top)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
