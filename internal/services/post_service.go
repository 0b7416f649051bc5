package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"socialposts/internal/events"
	"socialposts/internal/models"
	"socialposts/internal/repositories"
)

// PostService handles business logic related to posts. Only the author of a
// post may change or remove it.
type PostService struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	publisher events.Publisher
	log       zerolog.Logger
}

// NewPostService creates a new PostService. publisher may be nil.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, publisher events.Publisher, log zerolog.Logger) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
		log:       log.With().Str("component", "posts").Logger(),
	}
}

// CreatePost stores a new post for an existing author.
func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.PostView, error) {
	if _, err := s.userRepo.GetByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up author %d: %w", req.AuthorID, err)
	}

	post := &models.Post{
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	view, err := s.postRepo.GetViewByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created post %d: %w", post.ID, err)
	}

	publishEvent(ctx, s.publisher, s.log, events.PostCreated, map[string]interface{}{
		"postId":   post.ID,
		"authorId": post.AuthorID,
	})
	return view, nil
}

// GetAllPosts returns every post, newest first.
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.PostView, error) {
	return s.postRepo.ListViews(ctx)
}

// GetPostByID returns a single post.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.PostView, error) {
	view, err := s.postRepo.GetViewByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return view, nil
}

// GetUserPosts returns the posts of a user, newest first. An unknown user has
// no posts.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint) ([]models.PostView, error) {
	return s.postRepo.ListViewsByAuthor(ctx, userID)
}

// UpdatePost applies the supplied fields to a post owned by userID.
func (s *PostService) UpdatePost(ctx context.Context, id, userID uint, req models.UpdatePostRequest) (*models.PostView, error) {
	if err := s.checkAuthor(ctx, id, userID, ErrPostUpdateForbidden); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if req.Content != nil {
		changes["content"] = *req.Content
	}

	if len(changes) > 0 {
		if err := s.postRepo.Update(ctx, id, changes); err != nil {
			return nil, notFoundAs(err, ErrPostNotFound)
		}
		publishEvent(ctx, s.publisher, s.log, events.PostUpdated, map[string]interface{}{
			"postId":   id,
			"authorId": userID,
		})
	}

	view, err := s.postRepo.GetViewByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return view, nil
}

// DeletePost removes a post owned by userID.
func (s *PostService) DeletePost(ctx context.Context, id, userID uint) error {
	if err := s.checkAuthor(ctx, id, userID, ErrPostDeleteForbidden); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}

	s.log.Info().Uint("post_id", id).Uint("user_id", userID).Msg("post deleted")
	publishEvent(ctx, s.publisher, s.log, events.PostDeleted, map[string]interface{}{
		"postId":   id,
		"authorId": userID,
	})
	return nil
}

// checkAuthor returns forbidden unless the post exists and userID wrote it.
func (s *PostService) checkAuthor(ctx context.Context, id, userID uint, forbidden error) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}
	if post.AuthorID != userID {
		return forbidden
	}
	return nil
}

// notFoundAs replaces a repository not-found error with target.
func notFoundAs(err, target error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return target
	}
	return err
}
