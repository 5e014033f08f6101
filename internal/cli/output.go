package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoomInfo:
		o.printRoomInfo(v)
	case Suggestions:
		o.printSuggestions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoomInfo response type (matches API)
type RoomInfo struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	PlayerCount int    `json:"playerCount"`
	Joinable    bool   `json:"joinable"`
}

// Suggestions response type
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoomInfo(r RoomInfo) {
	joinable := "no"
	if r.Joinable {
		joinable = "yes"
	}
	fmt.Printf("Room: %s\n", r.ID)
	fmt.Printf("State: %s\n", r.State)
	fmt.Printf("Players: %d\n", r.PlayerCount)
	fmt.Printf("Joinable: %s\n", joinable)
}

func (o *Output) printSuggestions(s Suggestions) {
	for _, phrase := range s.Suggestions {
		fmt.Printf("  - %s\n", phrase)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
