package models

import "time"

// Post is a forum post as returned by the posts resource.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Tags         []string  `json:"tags,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	Liked        bool      `json:"liked"`
	Bookmarked   bool      `json:"bookmarked"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatePostRequest is the body for creating or updating a post.
type CreatePostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
}

// CreateCommentRequest is the body for adding a comment to a post.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// ToggleResult reports the new state after a like/bookmark toggle.
type ToggleResult struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
}
