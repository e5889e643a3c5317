package database

import (
	"errors"

	"github.com/rpupo63/blog-service-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// active scopes a fresh query to rows that have not been soft deleted.
func (r *BlogPostRepo) active() *gorm.DB {
	return r.db.Model(&models.BlogPost{}).Where("is_deleted = ?", false)
}

// FindActiveByID returns the active blog post with the given id, or nil when
// no such post exists. Soft-deleted posts are treated as nonexistent.
func (r *BlogPostRepo) FindActiveByID(id int64) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.active().Where("id = ?", id).First(&blogPost).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// ActiveTitleExists reports whether an active blog post already uses title.
func (r *BlogPostRepo) ActiveTitleExists(title string) (bool, error) {
	var count int64
	err := r.active().Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// CountActive returns the total number of active blog posts.
func (r *BlogPostRepo) CountActive() (int64, error) {
	var count int64
	err := r.active().Count(&count).Error
	return count, err
}

// FindActivePage returns one offset/limit window of active blog posts, newest
// first. Posts created within the same timestamp keep insertion order through
// the ascending id tie-break.
func (r *BlogPostRepo) FindActivePage(offset, limit int) ([]models.BlogPostSummary, error) {
	summaries := make([]models.BlogPostSummary, 0, limit)
	err := r.active().
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&summaries).Error
	return summaries, err
}

// Add inserts a new blog post; the store assigns id and both timestamps.
func (r *BlogPostRepo) Add(blogPost *models.BlogPost) error {
	return r.db.Create(blogPost).Error
}

// Update persists an already-loaded blog post in a single UPDATE, refreshing
// updated_at.
func (r *BlogPostRepo) Update(blogPost *models.BlogPost) error {
	return r.db.Save(blogPost).Error
}

// SoftDelete flips is_deleted on an active blog post. It reports false when
// the post does not exist or was already deleted, so a second delete of the
// same id is indistinguishable from deleting a post that never existed.
func (r *BlogPostRepo) SoftDelete(id int64) (bool, error) {
	result := r.db.Model(&models.BlogPost{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected > 0, result.Error
}
