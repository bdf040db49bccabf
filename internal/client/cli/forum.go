package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Feed pages through the forum feed. Each Enter loads the next page;
// anything else returns to the prompt.
func (a *App) Feed(ctx context.Context) error {
	feed := a.forum.Feed()

	for feed.HasMore() {
		posts, err := feed.Next(ctx)
		if err != nil {
			return err
		}
		for _, p := range posts {
			printPostLine(&p)
		}
		if !feed.HasMore() {
			break
		}
		more, err := getSimpleText(a.reader, "Enter for more, anything else to stop", os.Stdout)
		if err != nil || more != "" {
			return err
		}
	}
	printlnFn("End of feed.")
	return nil
}

// ShowPost opens a single post: detail, first page of comments, and a
// small action loop (like, bookmark, comment).
func (a *App) ShowPost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.forum.Post(ctx, id)
	if err != nil {
		return err
	}
	printPost(post)

	comments, err := a.forum.Comments(ctx, id, 1)
	if err != nil {
		return err
	}
	for _, c := range comments.Items {
		printlnFn(fmt.Sprintf("  %s: %s", c.AuthorName, c.Body))
	}

	if !a.isLoggedIn() {
		return nil
	}

	action, err := getSimpleText(a.reader, "Action: (l)ike, (b)ookmark, (c)omment, Enter to go back", os.Stdout)
	if err != nil {
		return err
	}
	switch action {
	case "l", "like":
		res, err := a.forum.ToggleLike(ctx, id)
		if err != nil {
			return err
		}
		printToggle("Liked", res)
	case "b", "bookmark":
		res, err := a.forum.ToggleBookmark(ctx, id)
		if err != nil {
			return err
		}
		printToggle("Bookmarked", res)
	case "c", "comment":
		body, err := GetMultiline(a.reader, "Enter comment", os.Stdout)
		if err != nil {
			return err
		}
		if _, err := a.forum.AddComment(ctx, id, body); err != nil {
			return err
		}
		printlnFn("Comment posted.")
	}
	return nil
}

// NewPost collects a title, body, and optional tags, and publishes the post.
func (a *App) NewPost(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter post text", os.Stdout)
	if err != nil {
		return err
	}
	tagLine, err := getSimpleText(a.reader, "Enter tags, comma separated (optional)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.forum.CreatePost(ctx, models.CreatePostRequest{
		Title: title,
		Body:  body,
		Tags:  splitTags(tagLine),
	})
	if err != nil {
		return err
	}
	printlnFn("Published:", post.ID)
	return nil
}

func splitTags(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(line, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func printToggle(verb string, res *models.ToggleResult) {
	state := "off"
	if res.Active {
		state = "on"
	}
	printlnFn(fmt.Sprintf("%s: %s (%d total)", verb, state, res.Count))
}
