package oaihttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/yungbote/lessongen/internal/platform/textgen"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func TestGenerateSendsSingleUserMessage(t *testing.T) {
	calls := 0
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			if req.URL.Path != "/v1/chat/completions" {
				t.Fatalf("unexpected path: %s", req.URL.Path)
			}
			if got := req.Header.Get("Authorization"); got != "Bearer sk-test" {
				t.Fatalf("authorization=%q", got)
			}
			var in chatCompletionRequest
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				t.Fatalf("decode req: %v", err)
			}
			if in.Model != "gpt-4o-mini" {
				t.Fatalf("model=%q", in.Model)
			}
			if len(in.Messages) != 1 || in.Messages[0].Role != "user" || in.Messages[0].Content != "make questions" {
				t.Fatalf("messages=%+v", in.Messages)
			}
			if in.Temperature != nil {
				t.Fatalf("temperature should be omitted, got %v", *in.Temperature)
			}
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"qstn:a opt:b ans:c"}}]}`), nil
		}),
	}

	g, err := NewWithHTTPClient(Config{BaseURL: "http://upstream/", APIKey: "sk-test", Model: "gpt-4o-mini"}, client)
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	out, err := g.Generate(context.Background(), "make questions")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "qstn:a opt:b ans:c" {
		t.Fatalf("out=%q", out)
	}
	if calls != 1 {
		t.Fatalf("calls=%d want=1", calls)
	}
}

func TestGenerateDoesNotRetryOnUpstreamFailure(t *testing.T) {
	calls := 0
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			return jsonResponse(http.StatusServiceUnavailable, `{"error":"overloaded"}`), nil
		}),
	}
	g, err := NewWithHTTPClient(Config{BaseURL: "http://upstream", Model: "m"}, client)
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	_, err = g.Generate(context.Background(), "p")
	var ge *textgen.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var he *HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected HTTPError 503, got %v", err)
	}
	if !strings.Contains(err.Error(), "overloaded") {
		t.Fatalf("expected upstream body in message: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d want=1", calls)
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"   "}}]}`), nil
		}),
	}
	g, _ := NewWithHTTPClient(Config{BaseURL: "http://upstream", Model: "m"}, client)
	if _, err := g.Generate(context.Background(), "p"); !errors.Is(err, textgen.ErrEmptyOutput) {
		t.Fatalf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(Config{Model: "m"}); err == nil {
		t.Fatalf("expected base_url error")
	}
	if _, err := New(Config{BaseURL: "http://x"}); err == nil {
		t.Fatalf("expected model error")
	}
}
