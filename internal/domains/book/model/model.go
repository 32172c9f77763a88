package model

import "time"

// Book is a single catalog record. DeletedAt drives the lifecycle: nil means
// the record is active, non-nil means it is soft-deleted and hidden from
// default queries. Hard-deleted records are removed from the store entirely.
type Book struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	ISBN          *string    `json:"isbn,omitempty" db:"isbn"`
	PublishedDate *time.Time `json:"published_date,omitempty" db:"published_date"`
	Genre         *string    `json:"genre,omitempty" db:"genre"`
	Description   *string    `json:"description,omitempty" db:"description"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// IsDeleted reports whether the record is currently soft-deleted.
func (b *Book) IsDeleted() bool {
	return b.DeletedAt != nil
}
