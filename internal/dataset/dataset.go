// Package dataset loads the question/answer corpus from line-delimited JSON.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
)

// Load reads QA pairs from the JSONL file at path. Each line must be an
// object with "prompt" and "completion" fields; questions are lowercased.
// A missing file is not an error: Load returns an empty slice so the caller
// can start with no data. Malformed lines are skipped and reported in the
// returned count of skipped lines. Lines may be arbitrarily long; answers
// in the corpus run long.
func Load(path string) (entries []models.QAEntry, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, skipped, fmt.Errorf("failed to read dataset: %w", readErr)
		}
		line = strings.TrimSpace(line)
		if line != "" {
			var entry models.QAEntry
			if err := json.Unmarshal([]byte(line), &entry); err != nil || entry.Question == "" {
				skipped++
			} else {
				entry.Question = strings.ToLower(entry.Question)
				entries = append(entries, entry)
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	return entries, skipped, nil
}

// Questions returns the question strings of entries, in order.
func Questions(entries []models.QAEntry) []string {
	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = e.Question
	}
	return questions
}
