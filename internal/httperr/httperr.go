package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond traduz o erro de um use case em resposta HTTP.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("request failed method=%s path=%s err=%v", c.Request.Method, c.FullPath(), err)
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	status := http.StatusBadRequest
	switch be.Kind {
	case KindValidation:
		status = http.StatusUnprocessableEntity
	case KindAuthorization:
		status = http.StatusForbidden
	case KindNotFound:
		status = http.StatusNotFound
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: Message(be.Code),
		Field:   be.Field,
	})
}
