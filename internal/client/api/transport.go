package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// envelope is the response wrapper every endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// requestBody abstracts the outgoing payload so a retried request can
// rebuild it from scratch (the first attempt consumes the reader).
type requestBody struct {
	contentType string
	build       func() (io.Reader, error)
}

func jsonBody(v any) *requestBody {
	return &requestBody{
		contentType: "application/json",
		build: func() (io.Reader, error) {
			data, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("marshal request body: %w", err)
			}
			return bytes.NewReader(data), nil
		},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out, false)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var rb *requestBody
	if body != nil {
		rb = jsonBody(body)
	}
	return c.send(ctx, http.MethodPost, path, nil, rb, out, false)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, nil, jsonBody(body), out, false)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil, nil, false)
}

// send runs one request through the full pipeline. The retried parameter is
// the explicit retry counter: a request that already went through the
// refresh path once is never retried again, whatever the server answers.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body *requestBody, out any, retried bool) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	// A session known to be past its expiry is refreshed up front,
	// saving the doomed round trip. Unknown expiry stays lazy and is
	// handled by the 401 path below.
	if !retried && !isAuthPath(path) {
		if sess := c.sessions.Current(); sess.Valid() && sess.Expired(time.Now()) {
			c.log.Debug(ctx, "session expired, refreshing before request", "method", method, "path", path)
			if err := c.refreshSession(ctx); err != nil {
				return err
			}
		}
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried && !isAuthPath(path) {
		c.log.Debug(ctx, "unauthorized response, refreshing session", "method", method, "path", path)
		if err := c.refreshSession(ctx); err != nil {
			return err
		}
		return c.send(ctx, method, path, query, body, out, true)
	}

	return decodeEnvelope(resp.StatusCode, data, out)
}

// newRequest builds the outgoing request: body, headers, and — when a
// session exists — the bearer token. A missing or unreadable session
// degrades to an unauthenticated request, never to a failure.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body *requestBody) (*http.Request, error) {
	u := c.baseURL + versionPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := ""
	if body != nil {
		r, err := body.build()
		if err != nil {
			return nil, err
		}
		reader = r
		contentType = body.contentType
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess := c.sessions.Current(); sess.Valid() {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}
	return req, nil
}

// refreshSession exchanges the stored refresh token for a new session.
// Concurrent callers share a single refresh call through the singleflight
// group. On any failure the local session is torn down and the expiry hook
// fires; the caller must not retry further.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		sess := c.sessions.Current()
		if !sess.Valid() {
			return nil, common.ErrNoSession
		}

		refreshed, err := c.refreshCall(ctx, sess.RefreshToken)
		if err != nil {
			return nil, err
		}

		profile := c.sessions.Profile()
		if err := c.sessions.Set(refreshed, profile); err != nil {
			return nil, fmt.Errorf("persist refreshed session: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		c.log.Warn(ctx, "session refresh failed, logging out", "err", err)
		_ = c.sessions.Clear()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return fmt.Errorf("%w: %v", common.ErrSessionExpired, err)
	}
	return nil
}

// refreshCall posts the refresh token out-of-band: no bearer header, no
// retry, so it can never recurse into the refresh path.
func (c *Client) refreshCall(ctx context.Context, refreshToken string) (*models.Session, error) {
	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+versionPrefix+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read refresh response: %w", err)
	}

	var sess models.Session
	if err := decodeEnvelope(resp.StatusCode, data, &sess); err != nil {
		return nil, err
	}
	if !sess.Valid() {
		return nil, fmt.Errorf("refresh response missing tokens")
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = session.ExpiryFromToken(sess.AccessToken)
	}
	return &sess, nil
}

// decodeEnvelope unwraps {success, data, message}. Non-2xx statuses and
// success=false both yield an *Error carrying the server message.
func decodeEnvelope(status int, data []byte, out any) error {
	if status >= 200 && status < 300 && len(data) == 0 {
		// 204-style responses carry no envelope.
		return nil
	}

	var env envelope
	if len(data) > 0 {
		// An unparsable body on an error status must not mask the status.
		if err := json.Unmarshal(data, &env); err != nil && status < 300 {
			return fmt.Errorf("decode response envelope: %w", err)
		}
	}

	if status < 200 || status >= 300 || !env.Success {
		return &Error{Status: status, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}
