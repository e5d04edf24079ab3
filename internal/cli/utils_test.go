package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
)

func TestWriteChatResult_Text(t *testing.T) {
	var buf bytes.Buffer
	result := &models.ChatResult{Response: "Hello! How can I assist you today?", Confidence: 1.0}
	if err := WriteChatResult(&buf, result, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Hello! How can I assist you today?") {
		t.Errorf("output missing response: %q", out)
	}
	if !strings.Contains(out, "1.00") {
		t.Errorf("output missing confidence: %q", out)
	}
}

func TestWriteChatResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := &models.ChatResult{Response: "Sow in autumn.", Confidence: 0.82}
	if err := WriteChatResult(&buf, result, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.ChatResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != *result {
		t.Errorf("round trip: %+v", decoded)
	}
}
