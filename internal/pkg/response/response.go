// Package response holds the two envelope shapes every endpoint returns:
// a plain message body and a data list with its total.
package response

import "github.com/gin-gonic/gin"

// ResponseMessage is the structured body of every non-entity response.
type ResponseMessage struct {
	Message string `json:"message"`
}

// ResponseData wraps list results with their total count.
type ResponseData[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// Message writes a {message} body with the given status.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ResponseMessage{Message: message})
}

// List writes a {data, total} body with the given status.
func List[T any](c *gin.Context, statusCode int, data []T, total int64) {
	c.JSON(statusCode, ResponseData[T]{Data: data, Total: total})
}
