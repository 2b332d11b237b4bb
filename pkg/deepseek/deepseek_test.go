package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
	c, err := New(Config{APIKey: "k", BaseURL: "http://host/v1/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), DefaultModel)
	}
	if c.baseURL != "http://host/v1" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.client.Timeout, DefaultTimeout)
	}
}

func TestGenerateContent(t *testing.T) {
	var got Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if strings.Contains(got.Messages[0].Content, "boom") {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}
		w.Write([]byte(`{"id":"1","model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}],"usage":{"total_tokens":3}}`))
	}))
	defer ts.Close()

	c, err := New(Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("fills model", func(t *testing.T) {
		resp, err := c.GenerateContent(context.Background(), &Request{
			Messages:       []Message{{Role: "user", Content: "hi"}},
			ResponseFormat: &ResponseFormat{Type: ResponseFormatJSON},
		})
		if err != nil {
			t.Fatalf("GenerateContent() error = %v", err)
		}
		if got.Model != DefaultModel {
			t.Errorf("request model = %q, want %q", got.Model, DefaultModel)
		}
		if got.ResponseFormat == nil || got.ResponseFormat.Type != ResponseFormatJSON {
			t.Errorf("response_format not sent: %+v", got.ResponseFormat)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "ok" {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("api error message", func(t *testing.T) {
		_, err := c.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "boom"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Errorf("error = %v, want message from error body", err)
		}
	})
}
