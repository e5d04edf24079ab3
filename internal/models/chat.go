package models

import (
	"fmt"
	"strings"
)

// ChatRequest is the body of a POST /chat call.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate trims the message and rejects empty input.
func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	return nil
}

// ChatResult is the outcome of resolving one chat message.
// Confidence is the raw pipeline score in [0,1]; rounding for the wire
// format happens at the HTTP boundary.
type ChatResult struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}
