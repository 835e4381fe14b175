package commands

import (
	"testing"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "chatterm [message]" {
		t.Errorf("Use = %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestRootSubcommands(t *testing.T) {
	expected := []string{"chat", "config", "serve"}

	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"output", "file", "raw", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("server") == nil {
		t.Error("persistent flag server not registered")
	}
}

func TestGetServerURLFlagOverride(t *testing.T) {
	old := serverFlag
	defer func() { serverFlag = old }()

	serverFlag = "http://example.com:9000"
	if got := getServerURL(); got != "http://example.com:9000" {
		t.Errorf("getServerURL() = %s, want flag value", got)
	}
}

func TestGetServerURLDefault(t *testing.T) {
	old := serverFlag
	defer func() { serverFlag = old }()
	serverFlag = ""
	t.Setenv("HOME", t.TempDir())

	if got := getServerURL(); got != "http://localhost:8080" {
		t.Errorf("getServerURL() = %s, want default", got)
	}
}
