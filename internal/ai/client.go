package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/strrl/socialgen/internal/metrics"
)

const (
	DefaultBaseURL  = "https://openrouter.ai/api/v1/chat/completions"
	DefaultSiteURL  = "https://instagen.ai"
	DefaultSiteName = "InstaGen"
	DefaultTimeout  = 45 * time.Second
)

var errMissingAPIKey = errors.New("OPENROUTER_API_KEY is required")

// Completer is the single capability the pipelines need from a model
// provider.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompletionError reports a non-success HTTP status from the completion
// endpoint. Body is kept for diagnostics only.
type CompletionError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("openrouter error: %s", e.Status)
}

type Client struct {
	apiKey     string
	baseURL    string
	siteURL    string
	siteName   string
	httpClient *http.Client
	log        logrus.FieldLogger
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(cfg Config, log logrus.FieldLogger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	siteURL := cfg.SiteURL
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}

	siteName := cfg.SiteName
	if siteName == "" {
		siteName = DefaultSiteName
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		siteURL:    siteURL,
		siteName:   siteName,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.WithField("component", "completion_client"),
	}, nil
}

// Complete sends one chat completion request and returns the content of the
// first choice. A well-formed response without that field yields "".
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	content, err := c.do(ctx, req)
	metrics.CompletionDuration.WithLabelValues(req.Model).Observe(time.Since(start).Seconds())

	var httpErr *CompletionError
	switch {
	case err == nil:
		metrics.CompletionRequests.WithLabelValues(req.Model, metrics.OutcomeOK).Inc()
	case errors.As(err, &httpErr):
		metrics.CompletionRequests.WithLabelValues(req.Model, metrics.OutcomeHTTPError).Inc()
	default:
		metrics.CompletionRequests.WithLabelValues(req.Model, metrics.OutcomeError).Inc()
	}
	return content, err
}

func (c *Client) do(ctx context.Context, req Request) (string, error) {
	payload := chatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", c.siteURL)
	httpReq.Header.Set("X-Title", c.siteName)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(logrus.Fields{
			"model":  req.Model,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("completion request rejected")
		return "", &CompletionError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(respBody),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}

	return parsed.Choices[0].Message.Content, nil
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
