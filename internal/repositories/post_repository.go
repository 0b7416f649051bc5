package repositories

import (
	"context"

	"socialposts/internal/models"
)

// PostRepository defines the interface for post data access.
// The View methods return posts joined with their author projection,
// newest first.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetViewByID(ctx context.Context, id uint) (*models.PostView, error)
	ListViews(ctx context.Context) ([]models.PostView, error)
	ListViewsByAuthor(ctx context.Context, authorID uint) ([]models.PostView, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}
