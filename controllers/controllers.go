// Package controllers holds the thin HTTP layer: form binding, flash
// notices and redirects on top of the service layer.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapp/auth"
	"blogapp/repository"
	"blogapp/services"
)

// paramID parses the numeric :id path parameter. A malformed id renders the
// same 404 a missing row would.
func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// renderError maps service errors onto the response taxonomy:
// 404 NotFound, 403 Forbidden, 401 Unauthorized, 500 otherwise.
func renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, auth.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// renderFieldError re-renders a form with a field-level validation message.
func renderFieldError(ctx *gin.Context, field, message string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{field: message}})
}
