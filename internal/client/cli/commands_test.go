package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/client/services"
)

// capturePrint redirects printlnFn into a slice for the duration of a test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// scriptInput replaces the interactive seams with canned answers.
func scriptInput(t *testing.T, answers []string, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

type fakeAuthSvc struct {
	services.AuthService

	gotEmail    string
	gotPassword string
	loginErr    error
}

func (f *fakeAuthSvc) Login(_ context.Context, email, password string) (*models.UserProfile, error) {
	f.gotEmail, f.gotPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.UserProfile{ID: "u-1", FullName: "Ada Agaricus"}, nil
}

func TestApp_LoginCommand(t *testing.T) {
	lines := capturePrint(t)
	scriptInput(t, []string{"ada@example.com"}, "hunter2secret")

	fake := &fakeAuthSvc{}
	app := &App{auth: fake, reader: rdr("")}

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, "ada@example.com", fake.gotEmail)
	assert.Equal(t, "hunter2secret", fake.gotPassword)
	require.NotEmpty(t, *lines)
	assert.Contains(t, (*lines)[len(*lines)-1], "Logged in as Ada Agaricus")
}

type fakeForumSvc struct {
	services.ForumService

	pages int
}

func (f *fakeForumSvc) Feed() *query.Feed[models.Post] {
	return query.NewFeed(2, func(_ context.Context, page, size int) (*models.Page[models.Post], error) {
		f.pages++
		return &models.Page[models.Post]{
			Items:      []models.Post{{ID: "p-1", Title: "Flush report"}, {ID: "p-2", Title: "Substrate mix"}},
			Page:       page,
			PageSize:   size,
			TotalPages: 2,
		}, nil
	})
}

func TestApp_FeedCommand_PagesOnEnter(t *testing.T) {
	capturePrint(t)
	// First prompt: Enter loads the next page. No second prompt is shown
	// because the feed is exhausted after page two.
	scriptInput(t, []string{""}, "")

	fake := &fakeForumSvc{}
	app := &App{forum: fake, reader: rdr("")}

	require.NoError(t, app.Feed(context.Background()))
	assert.Equal(t, 2, fake.pages)
}
