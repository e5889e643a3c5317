package models

import (
	"time"
)

// BlogPost represents a blog post row. Deleting a post only flips IsDeleted;
// the row itself is never removed. Title uniqueness is checked by the service
// against active rows only, so the column carries a plain index rather than a
// database unique constraint (a unique index would also collide with
// soft-deleted rows).
type BlogPost struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title     string    `json:"title" db:"title" gorm:"size:255;not null;index"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"size:300;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL  string    `json:"image_url" db:"image_url" gorm:"size:255;not null"`
	IsDeleted bool      `json:"is_deleted" db:"is_deleted" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// BlogPostSummary is the list projection of a blog post: the full body and
// the deleted flag are omitted.
type BlogPostSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogPostPage is one page of active blog posts. Count is the total number of
// active posts, not the page length. Next and Previous are relative URLs the
// caller can follow, or null at either end of the listing.
type BlogPostPage struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []BlogPostSummary `json:"results"`
}
