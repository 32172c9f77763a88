package model

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// ISBN-10 (9 digits + check character) or ISBN-13 (13 digits), validated
// after stripping hyphens and spaces.
var (
	isbnRegex      = regexp.MustCompile(`^\d{9}[\dXx]$|^\d{13}$`)
	isbnSeparators = regexp.MustCompile(`[- ]`)
)

func validISBN(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !isbnRegex.MatchString(isbnSeparators.ReplaceAllString(s, "")) {
		return validation.NewError("validation_isbn", "must be a valid ISBN-10 or ISBN-13")
	}
	return nil
}

// CreateBookRequest carries the fields accepted by POST /books.
type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be at most 255 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255).Error("author must be at most 255 characters"),
		),
		validation.Field(&r.ISBN, validation.By(validISBN)),
		validation.Field(&r.PublishedDate,
			validation.Date(dateLayout).Error("published date must be a valid date"),
		),
		validation.Field(&r.Genre,
			validation.Length(0, 100).Error("genre must be at most 100 characters"),
		),
	)
}

// ToEntity builds a Book from the validated request. Timestamps and the id
// are assigned by the store.
func (r CreateBookRequest) ToEntity() *Book {
	b := &Book{
		Title:  r.Title,
		Author: r.Author,
	}
	if r.ISBN != "" {
		isbn := r.ISBN
		b.ISBN = &isbn
	}
	if r.PublishedDate != "" {
		// Already validated; parse cannot fail here.
		d, _ := time.Parse(dateLayout, r.PublishedDate)
		b.PublishedDate = &d
	}
	if r.Genre != "" {
		genre := r.Genre
		b.Genre = &genre
	}
	if r.Description != "" {
		desc := r.Description
		b.Description = &desc
	}
	return b
}

// UpdateBookRequest carries the partial fields accepted by PUT/PATCH
// /books/:id. Nil pointers mean the field is left untouched; every field is
// optional but must be non-empty when present.
type UpdateBookRequest struct {
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedDate *string `json:"published_date,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Description   *string `json:"description,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 255).Error("title must be at most 255 characters"),
		),
		validation.Field(&r.Author,
			validation.NilOrNotEmpty.Error("author cannot be empty"),
			validation.Length(1, 255).Error("author must be at most 255 characters"),
		),
		validation.Field(&r.ISBN,
			validation.NilOrNotEmpty.Error("isbn cannot be empty"),
			validation.By(func(v interface{}) error {
				s, _ := v.(*string)
				if s == nil {
					return nil
				}
				return validISBN(*s)
			}),
		),
		validation.Field(&r.PublishedDate,
			validation.NilOrNotEmpty.Error("published date cannot be empty"),
			validation.Date(dateLayout).Error("published date must be a valid date"),
		),
		validation.Field(&r.Genre,
			validation.NilOrNotEmpty.Error("genre cannot be empty"),
			validation.Length(1, 100).Error("genre must be at most 100 characters"),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description cannot be empty"),
		),
	)
}

// ApplyTo copies only the fields present in the request onto the record. The
// date parse error is surfaced rather than stored as a zero value, so a
// caller skipping Validate cannot corrupt the record.
func (r UpdateBookRequest) ApplyTo(b *Book) error {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.ISBN != nil {
		isbn := *r.ISBN
		b.ISBN = &isbn
	}
	if r.PublishedDate != nil {
		d, err := time.Parse(dateLayout, *r.PublishedDate)
		if err != nil {
			return fmt.Errorf("invalid published date %q: %w", *r.PublishedDate, err)
		}
		b.PublishedDate = &d
	}
	if r.Genre != nil {
		genre := *r.Genre
		b.Genre = &genre
	}
	if r.Description != nil {
		desc := *r.Description
		b.Description = &desc
	}
	return nil
}

// ListBooksRequest carries the query parameters of GET /books. Page and Limit
// are zero when absent; the query planner applies the defaults.
type ListBooksRequest struct {
	Page            int    `form:"page" json:"page"`
	Limit           int    `form:"limit" json:"limit"`
	Title           string `form:"title" json:"title"`
	Author          string `form:"author" json:"author"`
	Genre           string `form:"genre" json:"genre"`
	ISBN            string `form:"isbn" json:"isbn"`
	PublishedAfter  string `form:"publishedAfter" json:"publishedAfter"`
	PublishedBefore string `form:"publishedBefore" json:"publishedBefore"`
	Sort            string `form:"sort" json:"sort"`
}

func (r ListBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page,
			validation.Min(1).Error("page must be a positive integer"),
		),
		validation.Field(&r.Limit,
			validation.Min(1).Error("limit must be between 1 and 100"),
			validation.Max(100).Error("limit must be between 1 and 100"),
		),
		validation.Field(&r.PublishedAfter,
			validation.Date(dateLayout).Error("publishedAfter must be a valid date"),
		),
		validation.Field(&r.PublishedBefore,
			validation.Date(dateLayout).Error("publishedBefore must be a valid date"),
		),
	)
}
