package response

import (
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Envelope wraps every response body the API returns.
type Envelope struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail aborts the chain so that no later handler writes to c.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}
