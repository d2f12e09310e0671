package util

import (
	"net/http"

	constant "github.com/SeakMengs/FontCatalog/internal/constant"
	"github.com/gin-gonic/gin"
)

// Envelope for every JSON answer except the font list, which stays a bare array
// for the font picker.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Errors  []ApiError `json:"errors,omitempty"`
	Data    any        `json:"data,omitempty"`
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ctx.AbortWithStatusJSON(http.StatusOK, Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    data,
	})
}

// fields is handed to GenerateErrorMessages: a map renaming struct fields to
// query parameter names, or the field to blame for a plain error.
func NewFailedResponse(message string, err error, fields ...any) Response {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Errors = GenerateErrorMessages(err, fields...)
	}

	return res
}

func ResponseFailed(ctx *gin.Context, code int, message string, err error, fields ...any) {
	ctx.AbortWithStatusJSON(code, NewFailedResponse(message, err, fields...))
}
