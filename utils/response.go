package utils

import (
	"errors"
	"net/http"

	"notebin/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Status:  http.StatusCreated,
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Status: http.StatusForbidden,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{
		Status: http.StatusConflict,
		Error:  message,
	})
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, &Response{
		Status: http.StatusTooManyRequests,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

// RespondError maps a service error onto the HTTP error taxonomy. Unknown
// errors become a 500 without leaking internals.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		NotFound(c, "not found")
	case errors.Is(err, errs.ErrNoteImmutable):
		Forbidden(c, "note is in the bin and cannot be modified")
	case errors.Is(err, errs.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, errs.ErrRateLimited):
		TooManyRequests(c, "too many requests, try again later")
	case errors.Is(err, errs.ErrEmailExists):
		Conflict(c, "email already registered")
	case errors.Is(err, errs.ErrInvalidCredentials):
		Unauthorized(c, "invalid email or password")
	case errors.Is(err, errs.ErrTokenInvalid):
		Unauthorized(c, "token is invalid or expired")
	default:
		InternalError(c, "internal server error")
	}
}
