package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the response envelope shared by every endpoint.
type Body struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Body{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination is used by list endpoints only.
func SuccessWithPagination(c *gin.Context, statusCode int, data interface{}, pagination interface{}) {
	c.JSON(statusCode, Body{
		Status:     "success",
		Data:       data,
		Pagination: pagination,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{
		Status:  "error",
		Message: message,
	})
}

// ErrorWithFields carries field-level validation messages.
func ErrorWithFields(c *gin.Context, statusCode int, message string, fields interface{}) {
	c.JSON(statusCode, Body{
		Status:  "error",
		Message: message,
		Errors:  fields,
	})
}

// ErrorWithDetail includes the raw error string. Callers only attach detail in
// development mode; production responses stay opaque.
func ErrorWithDetail(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, Body{
		Status:  "error",
		Message: message,
		Detail:  detail,
	})
}
