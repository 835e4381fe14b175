package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcruz/chatterm/internal/models"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local echo backend",
	Long: `Run a minimal local chat backend for trying out the client.

It answers POST /chat requests by echoing the message back, so
'chatterm --server http://localhost:8080' works out of the box.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveAddrFlag)
	},
}

type serveRequest struct {
	Message string `json:"message"`
}

type serveResponse struct {
	Reply string `json:"reply"`
}

// handleChat answers a single chat exchange.
func handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req serveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(serveResponse{Reply: echoReply(req.Message)})
}

// echoReply produces the canned reply for the echo backend.
func echoReply(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "Say something and I'll echo it back."
	}
	return fmt.Sprintf("You said: %s", message)
}

func runServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc(models.EndpointChat, handleChat)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Echo backend listening on %s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	fmt.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", ":8080", "Listen address for the echo backend")
}
