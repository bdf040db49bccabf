package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

type fakeForumAPI struct {
	listCalls     int
	getCalls      int
	commentsCalls int
	likeState     bool
}

func (f *fakeForumAPI) ListPosts(_ context.Context, page, size int) (*models.Page[models.Post], error) {
	f.listCalls++
	return &models.Page[models.Post]{
		Items:      []models.Post{{ID: "p-1", Title: "Shiitake logs", LikeCount: f.boolToCount()}},
		Page:       page,
		PageSize:   size,
		TotalPages: 2,
	}, nil
}

func (f *fakeForumAPI) boolToCount() int {
	if f.likeState {
		return 1
	}
	return 0
}

func (f *fakeForumAPI) GetPost(_ context.Context, id string) (*models.Post, error) {
	f.getCalls++
	return &models.Post{ID: id, LikeCount: f.boolToCount(), Liked: f.likeState}, nil
}

func (f *fakeForumAPI) CreatePost(_ context.Context, req models.CreatePostRequest) (*models.Post, error) {
	return &models.Post{ID: "p-new", Title: req.Title, Body: req.Body}, nil
}

func (f *fakeForumAPI) UpdatePost(_ context.Context, id string, req models.CreatePostRequest) (*models.Post, error) {
	return &models.Post{ID: id, Title: req.Title}, nil
}

func (f *fakeForumAPI) DeletePost(context.Context, string) error { return nil }

func (f *fakeForumAPI) ToggleLike(_ context.Context, _ string) (*models.ToggleResult, error) {
	f.likeState = !f.likeState
	return &models.ToggleResult{Active: f.likeState, Count: f.boolToCount()}, nil
}

func (f *fakeForumAPI) ToggleBookmark(context.Context, string) (*models.ToggleResult, error) {
	return &models.ToggleResult{Active: true}, nil
}

func (f *fakeForumAPI) ListComments(_ context.Context, postID string, page, size int) (*models.Page[models.Comment], error) {
	f.commentsCalls++
	return &models.Page[models.Comment]{Page: page, PageSize: size, TotalPages: 1}, nil
}

func (f *fakeForumAPI) CreateComment(_ context.Context, postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	return &models.Comment{ID: "c-1", PostID: postID, Body: req.Body}, nil
}

func (f *fakeForumAPI) DeleteComment(context.Context, string) error { return nil }

func newForumFixture(t *testing.T) (*fakeForumAPI, *query.Cache, ForumService) {
	t.Helper()
	fake := &fakeForumAPI{}
	cache := query.NewCache(time.Minute)
	t.Cleanup(cache.Stop)
	return fake, cache, NewForumService(fake, cache)
}

func TestForumService_PostsCached(t *testing.T) {
	fake, _, svc := newForumFixture(t)
	ctx := context.Background()

	_, err := svc.Posts(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Posts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.listCalls, "same page served from cache")

	_, err = svc.Posts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.listCalls, "different page is a different key")
}

func TestForumService_ToggleLikeInvalidatesDetailAndList(t *testing.T) {
	fake, _, svc := newForumFixture(t)
	ctx := context.Background()

	post, err := svc.Post(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, post.Liked)
	_, err = svc.Posts(ctx, 1)
	require.NoError(t, err)

	res, err := svc.ToggleLike(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, res.Active)

	post, err = svc.Post(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, post.Liked, "detail re-fetched after toggle")
	assert.Equal(t, 2, fake.getCalls)

	_, err = svc.Posts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.listCalls, "list re-fetched after toggle")
}

func TestForumService_AddCommentInvalidatesCommentsAndDetail(t *testing.T) {
	fake, _, svc := newForumFixture(t)
	ctx := context.Background()

	_, err := svc.Comments(ctx, "p-1", 1)
	require.NoError(t, err)
	_, err = svc.Post(ctx, "p-1")
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, "p-1", "great thread")
	require.NoError(t, err)

	_, err = svc.Comments(ctx, "p-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.commentsCalls)

	_, err = svc.Post(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.getCalls, "detail invalidated for the reply counter")
}

func TestForumService_Validation(t *testing.T) {
	_, _, svc := newForumFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, models.CreatePostRequest{Title: "", Body: "x"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.AddComment(ctx, "p-1", "   ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestForumService_FeedReadsThroughCache(t *testing.T) {
	fake, _, svc := newForumFixture(t)
	ctx := context.Background()

	feed := svc.Feed()
	_, err := feed.Next(ctx)
	require.NoError(t, err)
	assert.True(t, feed.HasMore())

	_, err = feed.Next(ctx)
	require.NoError(t, err)
	assert.False(t, feed.HasMore(), "two pages reported by the server")
	assert.Len(t, feed.Items(), 2)

	// A second feed over the same pages hits the cache, not the API.
	before := fake.listCalls
	feed2 := svc.Feed()
	_, err = feed2.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, fake.listCalls)
}
