package commands

import (
	"strings"
	"testing"

	"github.com/mcruz/chatterm/internal/config"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(cfg config.Config) bool
	}{
		{
			name:  "server_url",
			key:   "server_url",
			value: "https://chat.example.com",
			check: func(cfg config.Config) bool { return cfg.ServerURL == "https://chat.example.com" },
		},
		{
			name:  "timeout_seconds",
			key:   "timeout_seconds",
			value: "45",
			check: func(cfg config.Config) bool { return cfg.TimeoutSeconds == 45 },
		},
		{
			name:    "timeout_seconds rejects zero",
			key:     "timeout_seconds",
			value:   "0",
			wantErr: true,
		},
		{
			name:    "timeout_seconds rejects garbage",
			key:     "timeout_seconds",
			value:   "soon",
			wantErr: true,
		},
		{
			name:  "verbose",
			key:   "verbose",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.Verbose },
		},
		{
			name:    "verbose rejects garbage",
			key:     "verbose",
			value:   "yes please",
			wantErr: true,
		},
		{
			name:  "copy_to_clipboard",
			key:   "copy_to_clipboard",
			value: "true",
			check: func(cfg config.Config) bool { return cfg.CopyToClipboard },
		},
		{
			name:  "markdown style",
			key:   "markdown.style",
			value: "light",
			check: func(cfg config.Config) bool { return cfg.Markdown.Style == "light" },
		},
		{
			name:    "unknown key",
			key:     "no_such_key",
			value:   "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applySetting(&cfg, tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applySetting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("setting %s=%s not applied: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestConfigSetPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configSetCmd.SetArgs(nil)
	if err := configSetCmd.RunE(configSetCmd, []string{"server_url", "http://other:9090"}); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.ServerURL != "http://other:9090" {
		t.Errorf("ServerURL = %s, want http://other:9090", cfg.ServerURL)
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := configSetCmd.RunE(configSetCmd, []string{"bogus", "value"})
	if err == nil || !strings.Contains(err.Error(), "unknown setting") {
		t.Errorf("expected unknown setting error, got %v", err)
	}
}
