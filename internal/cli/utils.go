// Package cli provides CLI utilities for AgriAssist.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
)

// OutputFormat is the format for chat result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteChatResult writes a chat result to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteChatResult(w io.Writer, result *models.ChatResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		fmt.Fprintf(w, "\n%s\n\n(confidence: %.2f)\n", result.Response, result.Confidence)
		return nil
	}
}
