package oaihttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/lessongen/internal/platform/textgen"
)

const Provider = "oai_http"

type Config struct {
	BaseURL             string
	APIKey              string
	Model               string
	ChatCompletionsPath string
	// Temperature is sent only when non-nil.
	Temperature *float64
}

// Generator talks to any OpenAI-compatible chat completions endpoint.
type Generator struct {
	baseURL             string
	apiKey              string
	model               string
	chatCompletionsPath string
	temperature         *float64

	httpClient *http.Client
}

func New(cfg Config) (*Generator, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("oai_http: base_url required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, errors.New("oai_http: model required")
	}
	chatPath := strings.TrimSpace(cfg.ChatCompletionsPath)
	if chatPath == "" {
		chatPath = "/v1/chat/completions"
	}

	// No client-level timeout: cancellation comes from the request context.
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Generator{
		baseURL:             baseURL,
		apiKey:              strings.TrimSpace(cfg.APIKey),
		model:               model,
		chatCompletionsPath: chatPath,
		temperature:         cfg.Temperature,
		httpClient:          &http.Client{Transport: tr},
	}, nil
}

// NewWithHTTPClient is intended for tests; it avoids network access by using a custom RoundTripper.
func NewWithHTTPClient(cfg Config, httpClient *http.Client) (*Generator, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		g.httpClient = httpClient
	}
	return g, nil
}

func (g *Generator) Model() string { return g.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content,omitempty"`
		} `json:"message,omitempty"`
		Text string `json:"text,omitempty"`
	} `json:"choices"`
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", textgen.Wrap(Provider, errors.New("empty prompt"))
	}
	reqBody := chatCompletionRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: g.temperature,
	}

	var resp chatCompletionResponse
	if err := g.doJSON(ctx, http.MethodPost, g.chatCompletionsPath, reqBody, &resp); err != nil {
		return "", textgen.Wrap(Provider, err)
	}
	text := extractChatText(resp)
	if strings.TrimSpace(text) == "" {
		return "", textgen.Wrap(Provider, textgen.ErrEmptyOutput)
	}
	return text, nil
}

var _ textgen.Generator = (*Generator)(nil)

func extractChatText(resp chatCompletionResponse) string {
	for _, c := range resp.Choices {
		if strings.TrimSpace(c.Message.Content) != "" {
			return c.Message.Content
		}
		if strings.TrimSpace(c.Text) != "" {
			return c.Text
		}
	}
	return ""
}

func (g *Generator) doJSON(ctx context.Context, method string, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode chat completion: %w", err)
	}
	return nil
}
