package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// DefaultPageSize is used whenever a caller does not pick one.
const DefaultPageSize = 20

// ForumAPI is the slice of the API client the forum service needs.
type ForumAPI interface {
	ListPosts(ctx context.Context, page, size int) (*models.Page[models.Post], error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, req models.CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID string) (*models.ToggleResult, error)
	ToggleBookmark(ctx context.Context, postID string) (*models.ToggleResult, error)
	ListComments(ctx context.Context, postID string, page, size int) (*models.Page[models.Comment], error)
	CreateComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// ForumService is the cached forum surface consumed by the feed and post
// views.
type ForumService interface {
	Posts(ctx context.Context, page int) (*models.Page[models.Post], error)
	Feed() *query.Feed[models.Post]
	Post(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, req models.CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID string) (*models.ToggleResult, error)
	ToggleBookmark(ctx context.Context, postID string) (*models.ToggleResult, error)
	Comments(ctx context.Context, postID string, page int) (*models.Page[models.Comment], error)
	AddComment(ctx context.Context, postID, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}

type forumService struct {
	api   ForumAPI
	cache *query.Cache
}

// NewForumService constructs a ForumService.
func NewForumService(a ForumAPI, cache *query.Cache) ForumService {
	return &forumService{api: a, cache: cache}
}

func (s *forumService) Posts(ctx context.Context, page int) (*models.Page[models.Post], error) {
	key := query.ListKey("posts", page, DefaultPageSize)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Post], error) {
		return s.api.ListPosts(ctx, page, DefaultPageSize)
	})
}

// Feed returns a fresh infinite-scroll accumulator over the post list.
// It reads through the same cache as Posts, so a page already on screen
// is not re-fetched.
func (s *forumService) Feed() *query.Feed[models.Post] {
	return query.NewFeed(DefaultPageSize, func(ctx context.Context, page, size int) (*models.Page[models.Post], error) {
		key := query.ListKey("posts", page, size)
		return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Post], error) {
			return s.api.ListPosts(ctx, page, size)
		})
	})
}

func (s *forumService) Post(ctx context.Context, id string) (*models.Post, error) {
	key := query.Key("posts", "detail", id)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Post, error) {
		return s.api.GetPost(ctx, id)
	})
}

func (s *forumService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", common.ErrValidation)
	}

	post, err := s.api.CreatePost(ctx, req)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("posts"))
	return post, nil
}

func (s *forumService) UpdatePost(ctx context.Context, id string, req models.CreatePostRequest) (*models.Post, error) {
	post, err := s.api.UpdatePost(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.Key("posts", "detail", id))
	s.cache.InvalidatePrefix(query.ListPrefix("posts"))
	return post, nil
}

func (s *forumService) DeletePost(ctx context.Context, id string) error {
	if err := s.api.DeletePost(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(query.Key("posts", "detail", id))
	s.cache.InvalidatePrefix(query.ListPrefix("posts"))
	return nil
}

// ToggleLike invalidates the post's detail and the list pages, so the next
// read shows the new count.
func (s *forumService) ToggleLike(ctx context.Context, postID string) (*models.ToggleResult, error) {
	res, err := s.api.ToggleLike(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.Key("posts", "detail", postID))
	s.cache.InvalidatePrefix(query.ListPrefix("posts"))
	return res, nil
}

func (s *forumService) ToggleBookmark(ctx context.Context, postID string) (*models.ToggleResult, error) {
	res, err := s.api.ToggleBookmark(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.Key("posts", "detail", postID))
	s.cache.InvalidatePrefix(query.ListPrefix("posts"))
	return res, nil
}

func (s *forumService) Comments(ctx context.Context, postID string, page int) (*models.Page[models.Comment], error) {
	key := query.ListKey("comments/"+postID, page, DefaultPageSize)
	return query.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (*models.Page[models.Comment], error) {
		return s.api.ListComments(ctx, postID, page, DefaultPageSize)
	})
}

// AddComment invalidates the post's comment pages and its detail (the
// reply counter lives there).
func (s *forumService) AddComment(ctx context.Context, postID, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body is required", common.ErrValidation)
	}

	comment, err := s.api.CreateComment(ctx, postID, models.CreateCommentRequest{Body: body})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("comments/" + postID))
	s.cache.Invalidate(query.Key("posts", "detail", postID))
	return comment, nil
}

func (s *forumService) DeleteComment(ctx context.Context, postID, commentID string) error {
	if err := s.api.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("comments/" + postID))
	s.cache.Invalidate(query.Key("posts", "detail", postID))
	return nil
}
