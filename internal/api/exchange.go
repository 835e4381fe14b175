package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/mcruz/chatterm/internal/errors"
)

// maxReplySize bounds how much of a response body is read.
const maxReplySize = 1 << 20

// maxErrorBodySize limits how much of an error response is kept for
// diagnostics.
const maxErrorBodySize = 4096

// exchangeRequest is the wire format of a /chat request.
type exchangeRequest struct {
	Message string `json:"message"`
}

// Exchange sends a single user message to the backend and returns the
// reply text. The message is trimmed first; an empty result is rejected
// before any request is made.
//
// Transport failures come back as NetworkError, non-2xx statuses as
// APIError and malformed bodies as ParseError.
func (c *ChatClient) Exchange(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apierrors.ErrEmptyMessage
	}

	if c.IsClosed() {
		return "", apierrors.ErrClientClosed
	}

	endpoint := c.endpointURL()

	payload, err := json.Marshal(exchangeRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("send message", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody := readBounded(resp.Body, maxErrorBodySize)
		return "", apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, "exchange failed", string(errorBody))
	}

	body := readBounded(resp.Body, maxReplySize)
	return parseReply(body)
}

// readBounded reads at most limit bytes from r.
func readBounded(r io.Reader, limit int) []byte {
	body := make([]byte, 0, 4096)
	buf := make([]byte, 4096)
	for len(body) < limit {
		n, err := r.Read(buf)
		if n > 0 {
			if len(body)+n > limit {
				n = limit - len(body)
			}
			body = append(body, buf[:n]...)
		}
		if err != nil {
			break
		}
	}
	return body
}

// parseReply extracts the reply text from a response body.
func parseReply(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	reply := gjson.GetBytes(body, "reply")
	if !reply.Exists() {
		return "", apierrors.NewParseError("no reply field in response", "reply")
	}

	return reply.String(), nil
}
