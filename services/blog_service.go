package services

import (
	"fmt"

	"github.com/rpupo63/blog-service-backend/database"
	"github.com/rpupo63/blog-service-backend/errs"
	"github.com/rpupo63/blog-service-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pagination bounds for the list operation. Out-of-range values are rejected
// at the transport layer, never clamped.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const blogsBasePath = "/blogs"

// CreateBlogPostInput carries the fields of a new blog post. The validate
// tags are enforced by the transport layer before the service runs.
type CreateBlogPostInput struct {
	Title    string `json:"title" validate:"required,min=10,max=255"`
	Excerpt  string `json:"excerpt" validate:"required,min=20,max=300"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"required,max=255"`
}

// UpdateBlogPostInput carries a partial update. A nil field is left
// untouched: this is merge semantics, not replace.
type UpdateBlogPostInput struct {
	Title    *string `json:"title" validate:"omitempty,min=10,max=255"`
	Excerpt  *string `json:"excerpt" validate:"omitempty,min=20,max=300"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=255"`
}

// BlogService owns the business rules for blog posts: title uniqueness among
// active posts, pagination arithmetic, visibility of soft-deleted posts, and
// the soft-delete transition.
//
// Isolation between concurrent requests is left to the database. The
// uniqueness lookup and the write that follows it are separate statements, so
// two concurrent creates (or updates) racing on the same title can both pass
// the check. That window is a known non-guarantee, not something the service
// retries or locks around.
type BlogService struct {
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func NewBlogService(blogPostRepo *database.BlogPostRepo) *BlogService {
	logger := log.With().Str("serviceName", "blogService").Logger()

	return &BlogService{
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// Create persists a new blog post and returns the stored record with its
// server-assigned id and timestamps.
func (s *BlogService) Create(input CreateBlogPostInput) (*models.BlogPost, error) {
	taken, err := s.blogPostRepo.ActiveTitleExists(input.Title)
	if err != nil {
		return nil, errs.NewDatabaseError("check title for", "blog post", err)
	}
	if taken {
		s.logger.Warn().Str("title", input.Title).Msg("rejected duplicate blog post title")
		return nil, errs.NewDuplicateTitleError(input.Title)
	}

	blogPost := &models.BlogPost{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}
	if err := s.blogPostRepo.Add(blogPost); err != nil {
		return nil, errs.NewDatabaseError("create", "blog post", err)
	}

	return blogPost, nil
}

// List returns one page of active blog posts, newest first, together with
// the total active count and relative next/previous page URLs.
func (s *BlogService) List(page, pageSize int) (*models.BlogPostPage, error) {
	offset := (page - 1) * pageSize

	count, err := s.blogPostRepo.CountActive()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "blog posts", err)
	}

	results, err := s.blogPostRepo.FindActivePage(offset, pageSize)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "blog posts", err)
	}

	var next, previous *string
	if int64(offset+pageSize) < count {
		next = pageURL(page+1, pageSize)
	}
	if page > 1 {
		previous = pageURL(page-1, pageSize)
	}

	return &models.BlogPostPage{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}, nil
}

func pageURL(page, pageSize int) *string {
	url := fmt.Sprintf("%s?page=%d&page_size=%d", blogsBasePath, page, pageSize)
	return &url
}

// Read returns the full record of an active blog post. Soft-deleted posts
// are reported as not found.
func (s *BlogService) Read(id int64) (*models.BlogPost, error) {
	blogPost, err := s.blogPostRepo.FindActiveByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	if blogPost == nil {
		return nil, errs.NewNotFoundError("blog post")
	}
	return blogPost, nil
}

// Update merges the supplied fields into an active blog post and persists
// the result in a single UPDATE. When the title changes, uniqueness is
// re-checked against active posts first.
func (s *BlogService) Update(id int64, input UpdateBlogPostInput) (*models.BlogPost, error) {
	blogPost, err := s.Read(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != blogPost.Title {
		taken, err := s.blogPostRepo.ActiveTitleExists(*input.Title)
		if err != nil {
			return nil, errs.NewDatabaseError("check title for", "blog post", err)
		}
		if taken {
			s.logger.Warn().Str("title", *input.Title).Msg("rejected duplicate blog post title")
			return nil, errs.NewDuplicateTitleError(*input.Title)
		}
	}

	if input.Title != nil {
		blogPost.Title = *input.Title
	}
	if input.Excerpt != nil {
		blogPost.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		blogPost.Content = *input.Content
	}
	if input.ImageURL != nil {
		blogPost.ImageURL = *input.ImageURL
	}

	if err := s.blogPostRepo.Update(blogPost); err != nil {
		return nil, errs.NewDatabaseError("update", "blog post", err)
	}

	return blogPost, nil
}

// Delete soft-deletes an active blog post. A second delete of the same id
// reports not found, the same as deleting an id that never existed.
func (s *BlogService) Delete(id int64) error {
	deleted, err := s.blogPostRepo.SoftDelete(id)
	if err != nil {
		return errs.NewDatabaseError("delete", "blog post", err)
	}
	if !deleted {
		return errs.NewNotFoundError("blog post")
	}
	return nil
}
