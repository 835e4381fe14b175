package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	apierrors "github.com/mcruz/chatterm/internal/errors"
)

func TestFormatErrorMessage(t *testing.T) {
	if got := formatErrorMessage(nil, "context"); got != "" {
		t.Errorf("formatErrorMessage(nil) = %q, want empty", got)
	}

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "api error shows status and hint",
			err:      apierrors.NewAPIError(500, "http://localhost:8080/chat", "boom"),
			contains: []string{"Request failed", "500", "running and reachable"},
		},
		{
			name:     "network error shows hint",
			err:      apierrors.NewNetworkError("send message", "http://localhost:8080/chat", errors.New("refused")),
			contains: []string{"running and reachable"},
		},
		{
			name:     "parse error shows hint",
			err:      apierrors.NewParseError("bad shape", "reply"),
			contains: []string{"unexpected response"},
		},
		{
			name:     "plain error has no hint",
			err:      errors.New("something else"),
			contains: []string{"something else"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatErrorMessage(tt.err, "Request failed")
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestSpinnerStopOnce(t *testing.T) {
	s := newSpinner("testing")
	s.start()

	time.Sleep(10 * time.Millisecond)

	// Stopping twice must not panic
	s.stopOnce()
	s.stopOnce()
	<-s.done
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("testing")
	s.start()
	s.stopWithError()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop")
	}
}

func TestRunQueryEmptyMessage(t *testing.T) {
	if err := runQuery("   ", true); err == nil {
		t.Error("expected error for empty message")
	}
}
