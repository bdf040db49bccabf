package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

func pathParam(s string) string { return url.PathEscape(s) }

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))
	return q
}

// ListPosts returns one page of the forum feed, newest first.
func (c *Client) ListPosts(ctx context.Context, page, size int) (*models.Page[models.Post], error) {
	var out models.Page[models.Post]
	if err := c.get(ctx, "/posts", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPost fetches one post with its counters.
func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var out models.Post
	if err := c.get(ctx, "/posts/"+pathParam(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost publishes a new forum post.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	var out models.Post
	if err := c.post(ctx, "/posts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost edits an existing post.
func (c *Client) UpdatePost(ctx context.Context, id string, req models.CreatePostRequest) (*models.Post, error) {
	var out models.Post
	if err := c.put(ctx, "/posts/"+pathParam(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.delete(ctx, "/posts/"+pathParam(id))
}

// ToggleLike flips the caller's like on a post.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := c.post(ctx, "/posts/"+pathParam(postID)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleBookmark flips the caller's bookmark on a post.
func (c *Client) ToggleBookmark(ctx context.Context, postID string) (*models.ToggleResult, error) {
	var out models.ToggleResult
	if err := c.post(ctx, "/posts/"+pathParam(postID)+"/bookmark", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListComments returns one page of a post's comments, oldest first.
func (c *Client) ListComments(ctx context.Context, postID string, page, size int) (*models.Page[models.Comment], error) {
	var out models.Page[models.Comment]
	if err := c.get(ctx, "/posts/"+pathParam(postID)+"/comments", pageQuery(page, size), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateComment adds a comment to a post.
func (c *Client) CreateComment(ctx context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	var out models.Comment
	if err := c.post(ctx, "/posts/"+pathParam(postID)+"/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes one of the caller's comments.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.delete(ctx, "/comments/"+pathParam(id))
}
