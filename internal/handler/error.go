package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/response"
	"github.com/snnyvrz/bookshelf-api/internal/validation"
)

const (
	msgBookNotFound   = "book not found"
	msgIDNotFound     = "id not found"
	msgAddFailed      = "failed to add book"
	msgListFailed     = "failed to fetch books"
	msgFetchFailed    = "failed to fetch book"
	msgUpdateFailed   = "failed to update book"
	msgDeleteFailed   = "failed to delete book"
	msgRouteNotFound  = "resource not found"
	msgMethodNotAllow = "method not allowed"
)

func writeError(c *gin.Context, status int, message string) {
	response.Fail(c, status, message)
}

// writeValidationError answers 400 for rule violations and 500 for anything
// the validator itself failed on.
func writeValidationError(c *gin.Context, logger *slog.Logger, err error, internalMessage string) {
	if validation.IsValidationError(err) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeInternalError(c, logger, err, internalMessage)
}

func writeInternalError(c *gin.Context, logger *slog.Logger, err error, message string) {
	logger.ErrorContext(c.Request.Context(), message,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	writeError(c, http.StatusInternalServerError, message)
}

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	writeError(c, http.StatusNotFound, msgRouteNotFound)
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed, msgMethodNotAllow)
}
