package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Chats lists the user's conversations, newest activity first as returned
// by the server.
func (a *App) Chats(ctx context.Context) error {
	conversations, err := a.chat.Conversations(ctx)
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		printlnFn("No conversations yet.")
		return nil
	}
	for _, c := range conversations {
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d unread)", c.UnreadCount)
		}
		printlnFn(fmt.Sprintf("[%s] %s%s: %s", c.ID, c.PeerName, unread, c.LastMessage))
	}
	return nil
}

// OpenChat opens a conversation: it prints the latest messages, starts a
// background poller that prints anything new, and reads outgoing messages
// from the prompt. An empty line closes the thread.
func (a *App) OpenChat(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter conversation id (or peer id prefixed with @ to start one)", os.Stdout)
	if err != nil {
		return err
	}
	if peerID, ok := strings.CutPrefix(id, "@"); ok {
		conv, err := a.chat.StartConversation(ctx, peerID)
		if err != nil {
			return err
		}
		id = conv.ID
	}

	page, err := a.chat.Messages(ctx, id, 1)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(page.Items))
	for _, m := range page.Items {
		seen[m.ID] = struct{}{}
		printMessage(&m, a.auth.CurrentUser())
	}

	pollCtx, cancel := context.WithCancel(ctx)

	// The poller owns 'seen' from here on; this goroutine is the only
	// writer until cancel() and the deferred wait below.
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.chat.PollMessages(pollCtx, id, func(p *models.Page[models.Message]) {
			for _, m := range p.Items {
				if _, ok := seen[m.ID]; ok {
					continue
				}
				seen[m.ID] = struct{}{}
				printMessage(&m, a.auth.CurrentUser())
			}
		}, func(err error) {
			a.log.Warn(pollCtx, "chat poll failed", "error", err)
		})
	}()
	defer func() { cancel(); <-done }()

	printlnFn("Type a message and press Enter to send; empty line to close the thread.")
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		if _, err := a.chat.Send(ctx, id, line); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func printMessage(m *models.Message, me *models.UserProfile) {
	sender := m.SenderID
	if me != nil && m.SenderID == me.ID {
		sender = "you"
	}
	printlnFn(fmt.Sprintf("[%s] %s: %s", m.CreatedAt.Format("15:04"), sender, m.Body))
}
