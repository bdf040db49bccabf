package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Upload sends file content as a multipart form ("file" field plus the
// target "bucket" field) and returns the stored object's location. The
// content is held in memory so the request can be rebuilt if the first
// attempt is retried after a token refresh; the boundary is pinned up
// front for the same reason.
func (c *Client) Upload(ctx context.Context, bucket, filename string, content []byte) (*models.UploadResult, error) {
	boundary := multipart.NewWriter(io.Discard).Boundary()

	body := &requestBody{
		contentType: "multipart/form-data; boundary=" + boundary,
		build: func() (io.Reader, error) {
			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			if err := w.SetBoundary(boundary); err != nil {
				return nil, err
			}
			if err := w.WriteField("bucket", bucket); err != nil {
				return nil, fmt.Errorf("write bucket field: %w", err)
			}
			header := textproto.MIMEHeader{}
			header.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
			header.Set("Content-Type", http.DetectContentType(content))
			part, err := w.CreatePart(header)
			if err != nil {
				return nil, fmt.Errorf("create file part: %w", err)
			}
			if _, err := part.Write(content); err != nil {
				return nil, fmt.Errorf("write file part: %w", err)
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return &buf, nil
		},
	}

	var out models.UploadResult
	if err := c.send(ctx, http.MethodPost, "/uploads", nil, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}
