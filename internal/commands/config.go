package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcruz/chatterm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chatterm settings",
	Long:  `Show or change settings stored in ~/.chatterm/config.json.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("  server_url         %s\n", cfg.ServerURL)
		fmt.Printf("  timeout_seconds    %d\n", cfg.TimeoutSeconds)
		fmt.Printf("  verbose            %t\n", cfg.Verbose)
		fmt.Printf("  copy_to_clipboard  %t\n", cfg.CopyToClipboard)
		fmt.Printf("  markdown.style     %s\n", cfg.Markdown.Style)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Keys:
  server_url         Chat server base URL
  timeout_seconds    Request timeout in seconds
  verbose            Detailed output (true/false)
  copy_to_clipboard  Copy replies to the clipboard (true/false)
  markdown.style     Markdown theme ("dark", "light", or a JSON file path)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		if err := applySetting(&cfg, key, value); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

// applySetting updates a single config field from its string form.
func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "server_url":
		cfg.ServerURL = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		cfg.TimeoutSeconds = n
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false, got %q", value)
		}
		cfg.Verbose = b
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false, got %q", value)
		}
		cfg.CopyToClipboard = b
	case "markdown.style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
