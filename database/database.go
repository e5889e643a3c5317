package database

import (
	"github.com/rpupo63/blog-service-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db           *gorm.DB
	blogPostRepo *BlogPostRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		blogPostRepo: NewBlogPostRepo(db),
	}
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

// Migrate brings the schema up to date for every model the service owns.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(&models.BlogPost{})
}
