// Package commands provides CLI commands for chatterm.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcruz/chatterm/internal/config"
)

var (
	// Global flags
	serverFlag string
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chatterm [message]",
	Short: "Terminal client for a simple chat backend",
	Long: `chatterm is a terminal client for chat backends that speak a minimal
JSON protocol: POST /chat with {"message": "..."} returning {"reply": "..."}.

Examples:
  chatterm chat                         Start interactive chat
  chatterm config show                  Show current settings
  chatterm "What is Go?"                Send a single message
  chatterm -f message.md                Read message from file
  cat message.md | chatterm             Read message from stdin
  chatterm "Hello" -o reply.md          Save reply to file
  chatterm serve                        Run a local echo backend`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("chatterm %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "Chat server base URL (e.g., http://localhost:8080)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw reply without decoration")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// getServerURL returns the server URL to use (from flag or config)
func getServerURL() string {
	if serverFlag != "" {
		return serverFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().ServerURL
	}

	return cfg.ServerURL
}
