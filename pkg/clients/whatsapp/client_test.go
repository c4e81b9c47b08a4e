package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/mamadbah2/poultryfarm/internal/config"
)

func testConfig(baseURL string) config.WhatsAppConfig {
	return config.WhatsAppConfig{
		AccessToken:   "token-123",
		PhoneNumberID: "10101",
		BaseURL:       baseURL + "/",
		APIVersion:    "v20.0",
	}
}

func TestSendTextMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v20.0/10101/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("authorization = %q", got)
		}
		var payload struct {
			To   string `json:"to"`
			Type string `json:"type"`
			Text struct {
				Body string `json:"body"`
			} `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode: %v", err)
		}
		if payload.To != "254700000000" || payload.Type != "text" || len(payload.Text.Body) != maxBodyLength {
			t.Errorf("payload = %+v (body %d chars)", payload, len(payload.Text.Body))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.abc"}]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	resp, err := c.SendTextMessage(context.Background(), SendTextMessageRequest{
		To:   "254700000000",
		Body: strings.Repeat("x", maxBodyLength+100),
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "wamid.abc" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestTruncateBodyKeepsRunesWhole(t *testing.T) {
	body := strings.Repeat("a", maxBodyLength-1) + "é" + "tail"
	got := truncateBody(body, maxBodyLength)
	if !utf8.ValidString(got) {
		t.Fatal("truncated body is not valid UTF-8")
	}
	if got != strings.Repeat("a", maxBodyLength-1) {
		t.Fatalf("truncated to %d bytes", len(got))
	}

	report := strings.Repeat("🐔 ", 2000)
	got = truncateBody(report, maxBodyLength)
	if !utf8.ValidString(got) || len(got) > maxBodyLength || !strings.HasPrefix(report, got) {
		t.Fatalf("bad cut at %d bytes", len(got))
	}
	if short := "Eggs: 120"; truncateBody(short, maxBodyLength) != short {
		t.Fatal("short body changed")
	}
}

func TestSendTextMessageRequiresRecipient(t *testing.T) {
	c := NewClient(testConfig("http://127.0.0.1:1"))
	if _, err := c.SendTextMessage(context.Background(), SendTextMessageRequest{Body: "hi"}); err == nil {
		t.Fatal("expected error without recipient")
	}
}

func TestSendTextMessageSurfacesAPIError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Recipient not in allowed list","code":131030}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.SendTextMessage(context.Background(), SendTextMessageRequest{To: "1", Body: "hi"})
	if err == nil || !strings.Contains(err.Error(), "131030") {
		t.Fatalf("expected api error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("client errors should not be retried, got %d calls", calls.Load())
	}
}
