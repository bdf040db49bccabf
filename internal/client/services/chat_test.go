package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

type fakeChatAPI struct {
	listCalls     atomic.Int32
	messagesCalls atomic.Int32
	sent          []string
	lastPage      int
}

func (f *fakeChatAPI) ListConversations(context.Context) ([]models.Conversation, error) {
	f.listCalls.Add(1)
	return []models.Conversation{{ID: "c-1", PeerName: "Piet Porcini", LastMessage: "deal"}}, nil
}

func (f *fakeChatAPI) StartConversation(_ context.Context, peerID string) (*models.Conversation, error) {
	return &models.Conversation{ID: "c-new", PeerID: peerID}, nil
}

func (f *fakeChatAPI) ListMessages(_ context.Context, conversationID string, page, size int) (*models.Page[models.Message], error) {
	f.messagesCalls.Add(1)
	f.lastPage = page
	return &models.Page[models.Message]{
		Items: []models.Message{{ID: "m-1", ConversationID: conversationID, Body: "hi"}},
		Page:  page, PageSize: size, TotalPages: 1,
	}, nil
}

func (f *fakeChatAPI) SendMessage(_ context.Context, conversationID, body string) (*models.Message, error) {
	f.sent = append(f.sent, body)
	return &models.Message{ID: "m-2", ConversationID: conversationID, Body: body}, nil
}

func newChatFixture(t *testing.T, convPoll, msgPoll time.Duration) (*fakeChatAPI, ChatService) {
	t.Helper()
	fake := &fakeChatAPI{}
	cache := query.NewCache(time.Minute)
	t.Cleanup(cache.Stop)
	return fake, NewChatService(fake, cache, convPoll, msgPoll)
}

func TestChatService_SendInvalidatesThreadAndList(t *testing.T) {
	fake, svc := newChatFixture(t, time.Minute, time.Minute)
	ctx := context.Background()

	_, err := svc.Messages(ctx, "c-1", 1)
	require.NoError(t, err)
	_, err = svc.Conversations(ctx)
	require.NoError(t, err)

	_, err = svc.Send(ctx, "c-1", "two crates please")
	require.NoError(t, err)
	assert.Equal(t, []string{"two crates please"}, fake.sent)

	_, err = svc.Messages(ctx, "c-1", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.messagesCalls.Load(), "thread re-fetched after send")

	_, err = svc.Conversations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.listCalls.Load(), "list re-fetched after send")
}

func TestChatService_SendValidation(t *testing.T) {
	fake, svc := newChatFixture(t, time.Minute, time.Minute)

	_, err := svc.Send(context.Background(), "c-1", "  ")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, fake.sent)

	_, err = svc.StartConversation(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestChatService_PollMessagesDeliversFirstPage(t *testing.T) {
	fake, svc := newChatFixture(t, time.Minute, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var deliveries atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.PollMessages(ctx, "c-1", func(p *models.Page[models.Message]) {
			deliveries.Add(1)
		}, nil)
	}()

	assert.Eventually(t, func() bool { return deliveries.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 1, fake.lastPage, "poller watches the newest page")
	assert.GreaterOrEqual(t, fake.messagesCalls.Load(), int32(3), "polling bypasses the cache")
}

func TestChatService_PollConversations(t *testing.T) {
	fake, svc := newChatFixture(t, 10*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.PollConversations(ctx, func(list []models.Conversation) {
			if len(list) == 1 {
				got.Add(1)
			}
		}, nil)
	}()

	assert.Eventually(t, func() bool { return got.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.GreaterOrEqual(t, fake.listCalls.Load(), int32(2))
}
