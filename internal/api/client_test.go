package api

import (
	"strings"
	"testing"

	"github.com/mcruz/chatterm/internal/models"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient("http://example.com:9000")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if client.ServerURL() != "http://example.com:9000" {
		t.Errorf("ServerURL() = %s, want http://example.com:9000", client.ServerURL())
	}
	if client.timeout != DefaultTimeoutSeconds {
		t.Errorf("timeout = %d, want %d", client.timeout, DefaultTimeoutSeconds)
	}
	if client.IsClosed() {
		t.Error("new client should not be closed")
	}
}

func TestNewClientDefaultServerURL(t *testing.T) {
	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if client.ServerURL() != models.DefaultServerURL {
		t.Errorf("ServerURL() = %s, want %s", client.ServerURL(), models.DefaultServerURL)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("http://localhost:8080/", WithHTTPClient(&MockHttpClient{}))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if got := client.endpointURL(); got != "http://localhost:8080"+models.EndpointChat {
		t.Errorf("endpointURL() = %s, want http://localhost:8080%s", got, models.EndpointChat)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
	}{
		{"no scheme", "not a url"},
		{"relative path", "./relative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.serverURL); err == nil {
				t.Errorf("NewClient(%q) expected error, got nil", tt.serverURL)
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	mock := &MockHttpClient{}
	client, err := NewClient("http://localhost:8080",
		WithTimeout(5),
		WithHeader("X-Request-Source", "test"),
		WithHTTPClient(mock),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.timeout != 5 {
		t.Errorf("timeout = %d, want 5", client.timeout)
	}
	if client.headers["X-Request-Source"] != "test" {
		t.Errorf("header X-Request-Source = %s, want test", client.headers["X-Request-Source"])
	}
	if client.httpClient != mock {
		t.Error("WithHTTPClient should replace the underlying client")
	}
}

func TestWithTimeoutIgnoresNonPositive(t *testing.T) {
	client, err := NewClient("http://localhost:8080",
		WithTimeout(0),
		WithHTTPClient(&MockHttpClient{}),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.timeout != DefaultTimeoutSeconds {
		t.Errorf("timeout = %d, want default %d", client.timeout, DefaultTimeoutSeconds)
	}
}

func TestClientClose(t *testing.T) {
	client, err := NewClient("http://localhost:8080", WithHTTPClient(&MockHttpClient{}))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	client.Close()
	if !client.IsClosed() {
		t.Error("expected client to be closed")
	}

	// Close is idempotent
	client.Close()
	if !client.IsClosed() {
		t.Error("expected client to stay closed")
	}

	if _, err := client.Exchange("hello"); err == nil {
		t.Error("expected Exchange on closed client to fail")
	} else if !strings.Contains(err.Error(), "closed") {
		t.Errorf("unexpected error: %v", err)
	}
}
