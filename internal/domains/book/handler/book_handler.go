package handler

import (
	"net/http"
	"strconv"

	"book-catalog/internal/domains/book/model"
	"book-catalog/internal/domains/book/service"
	"book-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler - HTTP layer, thin glue over the service
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// bookID parses the :id path parameter. A non-integer id cannot reference any
// record, so it is reported as not found.
func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Book not found")
		return 0, false
	}
	return id, true
}

// validationFailed writes a 400 with field-level messages and reports whether
// the request is finished.
func validationFailed(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if fieldErrs, ok := err.(validation.Errors); ok {
		response.ErrorWithFields(c, http.StatusBadRequest, "Validation error", fieldErrs)
	} else {
		response.Error(c, http.StatusBadRequest, "Validation error")
	}
	return true
}

// ListBooks - GET /books
// Query params: page, limit, title, author, genre, isbn, publishedAfter,
// publishedBefore, sort
func (h *Handler) ListBooks(c *gin.Context) {
	var req model.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	if validationFailed(c, req.Validate()) {
		return
	}

	books, meta, err := h.service.List(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, books, meta)
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "", book)
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if validationFailed(c, req.Validate()) {
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book)
}

// UpdateBook - PUT /books/:id and PATCH /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if validationFailed(c, req.Validate()) {
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", book)
}

// DeleteBook - DELETE /books/:id (soft delete)
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	err := h.service.SoftDelete(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// HardDeleteBook - DELETE /books/:id/permanent
func (h *Handler) HardDeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	err := h.service.HardDelete(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book permanently deleted", nil)
}

// RestoreBook - POST /books/:id/restore
func (h *Handler) RestoreBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := h.service.Restore(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "Book restored successfully", book)
}
