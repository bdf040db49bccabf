package cli

import (
	"context"
	"fmt"
	"os"
)

// Stats prints the community counters shown on the home view.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.community.Stats(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Members: %d  Farmers: %d  Posts: %d  Products: %d",
		stats.Members, stats.Farmers, stats.Posts, stats.Products))
	return nil
}

// Upload sends a local file to the given bucket and prints its URL.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}
	bucket, err := getSimpleText(a.reader, "Enter bucket (avatars, posts, products)", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.uploads.UploadFile(ctx, bucket, path)
	if err != nil {
		return err
	}
	printlnFn("Uploaded:", result.URL)
	return nil
}
