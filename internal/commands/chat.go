package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcruz/chatterm/internal/api"
	"github.com/mcruz/chatterm/internal/config"
	"github.com/mcruz/chatterm/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session in the terminal.

Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg, _ := config.LoadConfig()

	serverURL := getServerURL()

	client, err := api.NewClient(serverURL, api.WithTimeout(cfg.TimeoutSeconds))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	return tui.RunChat(client, serverURL)
}
