package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kyc-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		apiKey:     "test-key",
		model:      "gpt-4o",
		apiURL:     srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestExtractDocumentReturnsCompletionContent(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"firstName\":\"Jean\"}"}}]}`))
	})

	content, err := client.ExtractDocument(context.Background(), llm.ExtractInput{
		ImageURL:     "https://example.com/id.jpg",
		DocumentType: "passport",
	})
	if err != nil {
		t.Fatalf("ExtractDocument: %v", err)
	}
	if content != `{"firstName":"Jean"}` {
		t.Fatalf("unexpected content: %s", content)
	}

	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %v", gotBody["messages"])
	}
	user, _ := messages[1].(map[string]any)
	parts, _ := user["content"].([]any)
	if len(parts) != 2 {
		t.Fatalf("expected text and image content parts, got %v", user["content"])
	}
	textPart, _ := parts[0].(map[string]any)
	if text, _ := textPart["text"].(string); !strings.Contains(text, "passport") {
		t.Fatalf("expected document type in user instruction, got %q", text)
	}
	imagePart, _ := parts[1].(map[string]any)
	imageURL, _ := imagePart["image_url"].(map[string]any)
	if imageURL["url"] != "https://example.com/id.jpg" {
		t.Fatalf("expected image url in payload, got %v", imageURL)
	}
	if imageURL["detail"] != "high" {
		t.Fatalf("expected high detail, got %v", imageURL["detail"])
	}
}

func TestExtractDocumentNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.ExtractDocument(context.Background(), llm.ExtractInput{
		ImageURL:     "https://example.com/id.jpg",
		DocumentType: "passport",
	})
	var statusErr *llm.APIStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected APIStatusError, got %v", err)
	}
	if !strings.Contains(statusErr.Status, "429") {
		t.Fatalf("expected upstream status text, got %q", statusErr.Status)
	}
}

func TestExtractDocumentEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.ExtractDocument(context.Background(), llm.ExtractInput{
		ImageURL:     "https://example.com/id.jpg",
		DocumentType: "passport",
	})
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
