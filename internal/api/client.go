// Package api implements the HTTP client for the chat backend.
package api

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/mcruz/chatterm/internal/models"
)

// DefaultTimeoutSeconds bounds every exchange so a hung backend resolves
// to an error instead of leaving the UI waiting forever.
const DefaultTimeoutSeconds = 120

// ChatClientInterface defines the backend operations the UI layers need.
type ChatClientInterface interface {
	Exchange(message string) (string, error)
	ServerURL() string
	Close()
	IsClosed() bool
}

// ChatClient talks to the chat backend over HTTP.
type ChatClient struct {
	httpClient tls_client.HttpClient
	serverURL  string
	headers    map[string]string
	timeout    int
	mu         sync.RWMutex
	closed     bool
}

// Ensure ChatClient implements ChatClientInterface
var _ ChatClientInterface = (*ChatClient)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*ChatClient)

// WithTimeout sets the request timeout in seconds.
func WithTimeout(seconds int) ClientOption {
	return func(c *ChatClient) {
		if seconds > 0 {
			c.timeout = seconds
		}
	}
}

// WithHeader adds a header to every exchange request.
func WithHeader(key, value string) ClientOption {
	return func(c *ChatClient) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *ChatClient) {
		c.httpClient = httpClient
	}
}

// NewClient creates a ChatClient for the given server URL. An empty URL
// falls back to models.DefaultServerURL.
func NewClient(serverURL string, opts ...ClientOption) (*ChatClient, error) {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if serverURL == "" {
		serverURL = models.DefaultServerURL
	}
	if _, err := url.ParseRequestURI(serverURL); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}

	client := &ChatClient{
		serverURL: serverURL,
		headers:   models.DefaultHeaders(),
		timeout:   DefaultTimeoutSeconds,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(client.timeout),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// ServerURL returns the configured server base URL.
func (c *ChatClient) ServerURL() string {
	return c.serverURL
}

// endpointURL returns the absolute URL of the exchange endpoint.
func (c *ChatClient) endpointURL() string {
	return c.serverURL + models.EndpointChat
}

// Close releases the client. Further exchanges fail with ErrClientClosed.
func (c *ChatClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
}

// IsClosed returns whether the client has been closed.
func (c *ChatClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
