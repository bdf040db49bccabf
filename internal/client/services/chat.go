package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// Polling defaults for the chat views. There is no push transport; open
// views revalidate on a fixed interval instead.
const (
	DefaultConversationPollInterval = 15 * time.Second
	DefaultMessagePollInterval      = 5 * time.Second
)

// ChatAPI is the slice of the API client the chat service needs.
type ChatAPI interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	StartConversation(ctx context.Context, peerID string) (*models.Conversation, error)
	ListMessages(ctx context.Context, conversationID string, page, size int) (*models.Page[models.Message], error)
	SendMessage(ctx context.Context, conversationID, body string) (*models.Message, error)
}

// ChatService drives the conversation list and open-thread views.
type ChatService interface {
	Conversations(ctx context.Context) ([]models.Conversation, error)
	StartConversation(ctx context.Context, peerID string) (*models.Conversation, error)
	Messages(ctx context.Context, conversationID string, page int) (*models.Page[models.Message], error)
	Send(ctx context.Context, conversationID, body string) (*models.Message, error)

	// PollConversations and PollMessages block until ctx is canceled,
	// delivering fresh results on every interval tick.
	PollConversations(ctx context.Context, consume func([]models.Conversation), onError func(error))
	PollMessages(ctx context.Context, conversationID string, consume func(*models.Page[models.Message]), onError func(error))
}

type chatService struct {
	api              ChatAPI
	cache            *query.Cache
	conversationPoll time.Duration
	messagePoll      time.Duration
}

// NewChatService constructs a ChatService. Non-positive intervals fall back
// to the defaults.
func NewChatService(a ChatAPI, cache *query.Cache, conversationPoll, messagePoll time.Duration) ChatService {
	if conversationPoll <= 0 {
		conversationPoll = DefaultConversationPollInterval
	}
	if messagePoll <= 0 {
		messagePoll = DefaultMessagePollInterval
	}
	return &chatService{api: a, cache: cache, conversationPoll: conversationPoll, messagePoll: messagePoll}
}

// Conversations is cached only as long as the poll interval: a stale list
// would fight the poller.
func (s *chatService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	key := query.Key("conversations", "list")
	return query.Fetch(ctx, s.cache, key, s.conversationPoll, func(ctx context.Context) ([]models.Conversation, error) {
		return s.api.ListConversations(ctx)
	})
}

func (s *chatService) StartConversation(ctx context.Context, peerID string) (*models.Conversation, error) {
	if strings.TrimSpace(peerID) == "" {
		return nil, fmt.Errorf("%w: peer id is required", common.ErrValidation)
	}

	conv, err := s.api.StartConversation(ctx, peerID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.Key("conversations", "list"))
	return conv, nil
}

func (s *chatService) Messages(ctx context.Context, conversationID string, page int) (*models.Page[models.Message], error) {
	key := query.ListKey("messages/"+conversationID, page, DefaultPageSize)
	return query.Fetch(ctx, s.cache, key, s.messagePoll, func(ctx context.Context) (*models.Page[models.Message], error) {
		return s.api.ListMessages(ctx, conversationID, page, DefaultPageSize)
	})
}

// Send invalidates the thread's message pages and the conversation list
// (last-message preview and ordering change).
func (s *chatService) Send(ctx context.Context, conversationID, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body is required", common.ErrValidation)
	}

	msg, err := s.api.SendMessage(ctx, conversationID, body)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(query.ListPrefix("messages/" + conversationID))
	s.cache.Invalidate(query.Key("conversations", "list"))
	return msg, nil
}

// PollConversations bypasses the cache: every tick hits the server so the
// list view converges even when nothing local invalidated it.
func (s *chatService) PollConversations(ctx context.Context, consume func([]models.Conversation), onError func(error)) {
	query.Poll(ctx, s.conversationPoll, s.api.ListConversations, consume, onError)
}

func (s *chatService) PollMessages(ctx context.Context, conversationID string, consume func(*models.Page[models.Message]), onError func(error)) {
	query.Poll(ctx, s.messagePoll, func(ctx context.Context) (*models.Page[models.Message], error) {
		return s.api.ListMessages(ctx, conversationID, 1, DefaultPageSize)
	}, consume, onError)
}
