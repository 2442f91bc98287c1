package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"deepsight/internal/config"
	"deepsight/internal/types"
)

// Client talks to the DeepSight backend: the paper source, the conference
// statistics source, the chat endpoint, and the synthesized audio stream.
type Client struct {
	baseURL string
	http    *http.Client
}

func New() (*Client, error) {
	cfg, err := config.LoadCoreConfig()
	if err != nil {
		return nil, err
	}
	return NewWithBaseURL(cfg.ServerBaseURL()), nil
}

func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchPapers returns the paper collection, optionally narrowed by the
// query's filters. A zero query returns the full default page.
func (c *Client) FetchPapers(ctx context.Context, query PaperQuery) ([]*types.Paper, error) {
	path := "/frontend/papers" + query.encode()
	var papers []*types.Paper
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (c *Client) GetPaper(ctx context.Context, id string) (*types.Paper, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("paper id is required")
	}
	var paper types.Paper
	if err := c.doJSON(ctx, http.MethodGet, "/frontend/papers/"+url.PathEscape(id), nil, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

func (c *Client) ListConferences(ctx context.Context) ([]*types.Conference, error) {
	var conferences []*types.Conference
	if err := c.doJSON(ctx, http.MethodGet, "/frontend/conferences", nil, &conferences); err != nil {
		return nil, err
	}
	return conferences, nil
}

func (c *Client) GetConferenceStats(ctx context.Context) (*types.ConferenceStats, error) {
	var stats types.ConferenceStats
	if err := c.doJSON(ctx, http.MethodGet, "/frontend/analytics/conference-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PostChatMessage sends one user message and returns the assistant's reply.
// There is no streaming and no retry; a failure is terminal for the turn.
func (c *Client) PostChatMessage(ctx context.Context, text string) (*types.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("message is required")
	}
	req := types.ChatMessage{Message: text}
	var resp types.ChatMessage
	if err := c.doJSON(ctx, http.MethodPost, "/frontend/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AudioStreamURL returns the stable URL of the synthesized deep-dive summary
// for the given paper subset. The stream itself is produced out-of-band.
func (c *Client) AudioStreamURL(paperIDs []string) string {
	ids := make([]string, 0, len(paperIDs))
	for _, id := range paperIDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	values := url.Values{}
	values.Set("papers", strings.Join(ids, ","))
	return c.baseURL + "/frontend/audio/deepdive?" + values.Encode()
}

// FetchAudioHeader reads up to n leading bytes of an audio stream so the
// caller can probe its real duration from the container metadata.
func (c *Client) FetchAudioHeader(ctx context.Context, streamURL string, n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("header size must be positive")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", "bytes=0-"+strconv.Itoa(n-1))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(io.LimitReader(resp.Body, int64(n)))
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	message := payload.Detail
	if message == "" {
		message = payload.Error
	}
	if message == "" {
		message = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
