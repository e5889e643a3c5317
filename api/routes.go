package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint the service exposes
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Get("/", handlers.homeHandler.getRoot())

		// Blog post endpoints
		r.Post("/blogs", handlers.blogPostHandler.createBlogPost())
		r.Get("/blogs", handlers.blogPostHandler.listBlogPosts())
		r.Get("/blogs/{blogID}", handlers.blogPostHandler.getBlogPost())
		r.Patch("/blogs/{blogID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blogs/{blogID}", handlers.blogPostHandler.deleteBlogPost())
	})
}
