package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient(Config{APIKey: "test-key", BaseURL: url}, quietLogger())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{}, quietLogger())
	require.ErrorIs(t, err, errMissingAPIKey)
}

func TestCompleteSendsHeadersAndPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultSiteURL, r.Header.Get("HTTP-Referer"))
		assert.Equal(t, DefaultSiteName, r.Header.Get("X-Title"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-model", payload["model"])
		assert.InDelta(t, 0.7, payload["temperature"], 1e-9)

		messages := payload["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, map[string]any{"role": "system", "content": "be nice"}, messages[0])
		assert.Equal(t, map[string]any{"role": "user", "content": "hello"}, messages[1])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hi there"}}]}`))
	}))
	defer server.Close()

	content, err := newTestClient(t, server.URL).Complete(context.Background(), Request{
		Model:       "test-model",
		Messages:    []Message{SystemMessage("be nice"), UserMessage("hello")},
		Temperature: 0.7,
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", content)
}

func TestCompleteMultiPartMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Messages, 1)

		var parts []ContentPart
		require.NoError(t, json.Unmarshal(payload.Messages[0].Content, &parts))
		require.Len(t, parts, 2)
		assert.Equal(t, "text", parts[0].Type)
		assert.Equal(t, "image_url", parts[1].Type)
		assert.Equal(t, "data:image/png;base64,AAAA", parts[1].ImageURL.URL)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	content, err := newTestClient(t, server.URL).Complete(context.Background(), Request{
		Model: "vision",
		Messages: []Message{{
			Role:  RoleUser,
			Parts: []ContentPart{TextPart("look"), ImagePart("data:image/png;base64,AAAA")},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", content)
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Complete(context.Background(), Request{Model: "m"})
	require.Error(t, err)

	var completionErr *CompletionError
	require.True(t, errors.As(err, &completionErr))
	assert.Equal(t, http.StatusTooManyRequests, completionErr.StatusCode)
	assert.Contains(t, completionErr.Status, "Too Many Requests")
	assert.Contains(t, completionErr.Body, "rate limited")
}

func TestCompleteMissingChoicesReturnsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"choices":[]}`, `{"choices":[{"message":{}}]}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		content, err := newTestClient(t, server.URL).Complete(context.Background(), Request{Model: "m"})
		require.NoError(t, err, body)
		assert.Empty(t, content, body)
		server.Close()
	}
}

func TestCompleteMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Complete(context.Background(), Request{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestModelsResolve(t *testing.T) {
	models := DefaultModels()
	assert.Equal(t, models.Vision, models.Resolve(RoleVision))
	assert.Equal(t, models.Fast, models.Resolve(ModelRole("unknown")))

	assert.Equal(t, DefaultModels().Fast, Models{}.Resolve(RoleCreative))
}
