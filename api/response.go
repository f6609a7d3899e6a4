package api

import (
	"github.com/correia-jilson/pennywise-tracker/config"
	"github.com/correia-jilson/pennywise-tracker/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body every failed request returns. Details is
// only populated for server-side failures and passes through
// SafeErrorMessage so release builds never leak internals.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the JSON body for confirmations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// Fail writes an error body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// FailWithDetails writes an error body carrying diagnostic detail.
func FailWithDetails(c *gin.Context, status int, message string, err error) {
	c.JSON(status, ErrorResponse{
		Error:   message,
		Details: config.SafeErrorMessage(err, message),
	})
}

// requestUserID resolves the owning user for a request. Without
// authentication every request defaults to the demo account.
func requestUserID(c *gin.Context) string {
	if uid := c.Query("userId"); uid != "" {
		return uid
	}
	return models.DefaultUserID
}
