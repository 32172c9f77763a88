package model

import (
	"errors"
	"net/http"

	"book-catalog/internal/shared/response"
	"book-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	// ErrBookNotFound covers absent ids, soft-deleted records read through the
	// default path, and purged records.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookNotDeleted is returned by restore when deleted_at is already null.
	ErrBookNotDeleted = errors.New("book is not deleted")

	// ErrISBNAlreadyExists maps the store's unique constraint on isbn.
	ErrISBNAlreadyExists = errors.New("ISBN already exists")

	// ErrStoreUnavailable means the backing store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

var bookErrorMap = map[error]struct {
	Status  int
	Message string
}{
	ErrBookNotFound:      {Status: http.StatusNotFound, Message: "Book not found"},
	ErrBookNotDeleted:    {Status: http.StatusBadRequest, Message: "Book is not deleted"},
	ErrISBNAlreadyExists: {Status: http.StatusBadRequest, Message: "A book with this ISBN already exists"},
	ErrStoreUnavailable:  {Status: http.StatusServiceUnavailable, Message: "Service unavailable"},
}

// HandleBookError writes the mapped error response and reports whether the
// request is finished. Unknown errors become an opaque 500; the raw error is
// attached only in debug mode.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.Error(c, cfg.Status, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled book error", err)
	if gin.Mode() == gin.DebugMode {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Internal server error", err.Error())
	} else {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
	return true
}
