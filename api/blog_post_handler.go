package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/blog-service-backend/errs"
	"github.com/rpupo63/blog-service-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	blogService *services.BlogService
}

func newBlogPostHandler(blogService *services.BlogService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire names, not the Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return blogPostHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    validate,
		blogService: blogService,
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post; the title must not collide with any active post
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body services.CreateBlogPostInput true "Blog post data"
// @Success 201 {object} models.BlogPost "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate title"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Field validation failed"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.CreateBlogPostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := h.checkInput(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogService.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, blogPost)
	}
}

// listBlogPosts retrieves one page of active blog posts
// @Summary List blog posts
// @Description Retrieves active blog posts ordered newest first, with offset pagination
// @Tags Blog Posts
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param page_size query int false "Items per page, at most 100" default(10)
// @Success 200 {object} models.BlogPostPage "Page of blog posts"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Invalid page or page_size"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs [get]
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryIntParam(r, "page", services.DefaultPage)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		pageSize, err := queryIntParam(r, "page_size", services.DefaultPageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Out-of-range values are rejected, never clamped.
		if page < 1 {
			h.responder.WriteError(w, errs.NewInvalidParamError("page", "must be at least 1"))
			return
		}
		if pageSize < 1 || pageSize > services.MaxPageSize {
			h.responder.WriteError(w, errs.NewInvalidParamError("page_size",
				fmt.Sprintf("must be between 1 and %d", services.MaxPageSize)))
			return
		}

		blogPostPage, err := h.blogService.List(page, pageSize)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blogPostPage)
	}
}

// getBlogPost retrieves a specific blog post by ID
// @Summary Get blog post
// @Description Retrieves the full record of an active blog post; soft-deleted posts return 404
// @Tags Blog Posts
// @Produce json
// @Param blogID path int true "Blog Post ID"
// @Success 200 {object} models.BlogPost "Blog post details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs/{blogID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := blogPostIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogService.Read(blogPostID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// updateBlogPost applies a partial update to an existing blog post
// @Summary Update blog post
// @Description Merges the supplied fields into an active blog post; unset fields are left untouched
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogID path int true "Blog Post ID"
// @Param blogPost body services.UpdateBlogPostInput true "Fields to update"
// @Success 200 {object} models.BlogPost "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID or malformed body"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 409 {object} ErrorResponse "Conflict - Duplicate title"
// @Failure 422 {object} ErrorResponse "Unprocessable Entity - Field validation failed"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs/{blogID} [patch]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := blogPostIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input services.UpdateBlogPostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if err := h.checkInput(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost, err := h.blogService.Update(blogPostID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// deleteBlogPost soft-deletes a blog post by ID
// @Summary Delete blog post
// @Description Marks a blog post deleted; the row is kept but becomes invisible to every operation
// @Tags Blog Posts
// @Param blogID path int true "Blog Post ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found or already deleted"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs/{blogID} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := blogPostIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogService.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// checkInput runs schema validation and converts failed rules into the
// per-field violation list of a 422 response.
func (h blogPostHandler) checkInput(input any) error {
	err := h.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewInternalError("input validation failed")
	}

	violations := make([]errs.FieldViolation, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, errs.FieldViolation{
			Field:   fieldErr.Field(),
			Message: violationMessage(fieldErr),
		})
	}
	return errs.NewValidationError(violations)
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}

// blogPostIDParam parses the {blogID} path parameter.
func blogPostIDParam(r *http.Request) (int64, error) {
	blogPostIDStr := chi.URLParam(r, "blogID")
	if blogPostIDStr == "" {
		return 0, errs.NewBadRequestError("missing blogID")
	}

	blogPostID, err := strconv.ParseInt(blogPostIDStr, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid blogID")
	}
	return blogPostID, nil
}

// queryIntParam reads an integer query parameter, falling back to def when
// the parameter is absent.
func queryIntParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewInvalidParamError(name, "must be an integer")
	}
	return value, nil
}
