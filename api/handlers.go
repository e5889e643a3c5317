package api

import (
	"github.com/rpupo63/blog-service-backend/database"
	"github.com/rpupo63/blog-service-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	blogService := services.NewBlogService(database.BlogPostRepo())

	return &routeHandlers{
		homeHandler:     newHomeHandler(),
		blogPostHandler: newBlogPostHandler(blogService),
	}
}
