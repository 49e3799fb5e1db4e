package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"earnhub/internal/infrastructure/token"
	"earnhub/pkg/errors"
	"earnhub/pkg/logger"
)

// TokenSource supplies the bearer credential of the current session. An
// empty token means the session is anonymous.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource fixed at construction time, one per session.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client is the shared HTTP plumbing for every remote collection client:
// bounded timeout, bearer credential, request correlation id, and the
// transport/application error split.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// WithToken returns a client bound to another session credential, sharing
// the underlying HTTP client.
func (c *Client) WithToken(tokens TokenSource) *Client {
	return &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		tokens:     tokens,
	}
}

func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out, true)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out interface{}) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out, true)
}

func (c *Client) PutJSON(ctx context.Context, path string, in, out interface{}) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out, true)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, true)
}

// PostMultipart sends a prepared multipart body, used by the product add call.
func (c *Client) PostMultipart(ctx context.Context, path string, body *bytes.Buffer, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, contentType, out, true)
}

// PostPublic issues an unauthenticated call (login, register).
func (c *Client) PostPublic(ctx context.Context, path string, in, out interface{}) error {
	body, contentType, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out, false)
}

func encodeJSON(in interface{}) (*bytes.Buffer, string, error) {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return nil, "", errors.Internal("Failed to encode request", err)
	}
	return bytes.NewBuffer(jsonData), "application/json", nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, authed bool) error {
	var bearer string
	if authed {
		if c.tokens != nil {
			bearer = c.tokens.Token()
		}
		// No token means no call: authenticated endpoints fail gracefully
		// instead of burning a round-trip on a guaranteed 401.
		if bearer == "" {
			return errors.Unauthorized("No active session", nil)
		}
		if token.IsExpired(bearer) {
			return errors.Unauthorized("Session expired", nil)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.LogRemoteError(method, path, err)
		return errors.Transport("Unable to reach the platform API", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Transport("Failed to read response", err)
	}

	if resp.StatusCode >= 400 {
		return remoteError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Transport("Invalid response from the platform API", err)
		}
	}

	return nil
}

// remoteError surfaces the server-provided message verbatim when one exists,
// otherwise a generic fallback for the status class.
func remoteError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else if payload.Error != "" {
			message = payload.Error
		}
	}
	if message == "" {
		message = "The platform API rejected the request"
	}

	return errors.New(codeForStatus(status), message, status, nil)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		return "REMOTE_ERROR"
	}
}
