// Package models defines core data structures for QA entries, chat
// requests, and chat results.
package models

// QAEntry is a stored question/answer pair. Questions are lowercased at
// load time; the slice position of an entry is the join key to its
// embedding in the question index.
type QAEntry struct {
	Question string `json:"prompt"`
	Answer   string `json:"completion"`
}
