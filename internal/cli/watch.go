package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		token      string
		joinRoom   string
		username   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a room's event stream over WebSocket",
		Long: `Connect to the server's WebSocket endpoint and print every event the
server sends.

Either reconnect as an existing player with --token, or join a room as a
fresh spectating player with --join and --name.

Press Ctrl+C to disconnect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" && joinRoom == "" {
				return fmt.Errorf("either --token or --join is required")
			}
			return watchEvents(token, joinRoom, username, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Reconnect with an existing player token")
	cmd.Flags().StringVar(&joinRoom, "join", "", "Join the given room as a new player")
	cmd.Flags().StringVar(&username, "name", "watcher", "Username to join with")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

// WatchedEvent represents one received event
type WatchedEvent struct {
	Time    time.Time       `json:"time"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func watchEvents(token, joinRoom, username string, jsonOutput bool) error {
	wsURL, err := websocketURL(cfg.ServerURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Announce ourselves: reconnect as an existing player, or join as
	// a new one
	var hello envelope
	if token != "" {
		hello.Type = "RECONNECT"
		hello.Payload, _ = json.Marshal(map[string]string{"playerToken": token})
	} else {
		hello.Type = "JOIN_ROOM"
		hello.Payload, _ = json.Marshal(map[string]string{"roomId": joinRoom, "username": username})
	}
	if err := conn.WriteJSON(hello); err != nil {
		return fmt.Errorf("failed to send %s: %w", hello.Type, err)
	}

	if !jsonOutput {
		fmt.Println("Connected")
	}

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for {
		var evt envelope
		if err := conn.ReadJSON(&evt); err != nil {
			if ctx.Err() != nil {
				if !jsonOutput {
					fmt.Println("\nDisconnected")
				}
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}
		printWatchedEvent(evt, jsonOutput)
	}
}

func printWatchedEvent(evt envelope, jsonOutput bool) {
	now := time.Now()

	if jsonOutput {
		data, _ := json.Marshal(WatchedEvent{Time: now, Type: evt.Type, Payload: evt.Payload})
		fmt.Println(string(data))
		return
	}

	display := string(evt.Payload)
	if len(display) > 100 {
		display = display[:100] + "..."
	}
	fmt.Printf("[%s] %s: %s\n", now.Format("2006-01-02 15:04:05"), evt.Type, display)
}

func websocketURL(serverURL string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = "/ws"
	return u.String(), nil
}
