package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"socialposts/internal/models"
)

const postViewColumns = `posts.id, posts.content, posts.author_id, posts.created_at, posts.updated_at,
	users.email AS author_email, profiles.name AS author_name, profiles.avatar AS author_avatar`

// postViewRow is the flat result of the posts/users/profiles join.
type postViewRow struct {
	ID           uint
	Content      string
	AuthorID     uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	AuthorEmail  string
	AuthorName   *string
	AuthorAvatar *string
}

func (row postViewRow) toView() models.PostView {
	view := models.PostView{
		ID:        row.ID,
		Content:   row.Content,
		AuthorID:  row.AuthorID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Author: models.Author{
			ID:    row.AuthorID,
			Email: row.AuthorEmail,
		},
	}
	if row.AuthorName != nil {
		view.Author.Profile = &models.AuthorProfile{
			Name:   *row.AuthorName,
			Avatar: row.AuthorAvatar,
		}
	}
	return view
}

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create creates a new post in the database.
func (r *GORMPostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a single post by its ID, without the author.
func (r *GORMPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by ID %d: %w", id, err)
	}
	return &post, nil
}

// GetViewByID retrieves a post joined with its author projection.
func (r *GORMPostRepository) GetViewByID(ctx context.Context, id uint) (*models.PostView, error) {
	var rows []postViewRow
	if err := r.viewQuery(ctx).Where("posts.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get post view by ID %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
	}
	view := rows[0].toView()
	return &view, nil
}

// ListViews retrieves every post, newest first.
func (r *GORMPostRepository) ListViews(ctx context.Context) ([]models.PostView, error) {
	var rows []postViewRow
	if err := r.viewQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return toViews(rows), nil
}

// ListViewsByAuthor retrieves the posts written by authorID, newest first.
func (r *GORMPostRepository) ListViewsByAuthor(ctx context.Context, authorID uint) ([]models.PostView, error) {
	var rows []postViewRow
	if err := r.viewQuery(ctx).Where("posts.author_id = ?", authorID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts of user %d: %w", authorID, err)
	}
	return toViews(rows), nil
}

// Update applies changes to the post with the given ID.
func (r *GORMPostRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("failed to update post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete deletes a post by its ID from the database.
func (r *GORMPostRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GORMPostRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select(postViewColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Order("posts.created_at DESC").
		Order("posts.id DESC")
}

func toViews(rows []postViewRow) []models.PostView {
	views := make([]models.PostView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views
}
