package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/devaniket16/Agriassist-Chatbot/internal/chat"
	"github.com/devaniket16/Agriassist-Chatbot/internal/config"
	"github.com/devaniket16/Agriassist-Chatbot/internal/embedding"
	"github.com/devaniket16/Agriassist-Chatbot/internal/language"
	"github.com/devaniket16/Agriassist-Chatbot/internal/lexicon"
	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
	"github.com/devaniket16/Agriassist-Chatbot/internal/translate"
	"github.com/devaniket16/Agriassist-Chatbot/internal/vector"
	"github.com/devaniket16/Agriassist-Chatbot/pkg/utils"
)

func newTestServer(t *testing.T, entries []models.QAEntry) *Server {
	t.Helper()
	embedder := embedding.NewMockEmbedder(8)
	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = e.Question
	}
	index, err := vector.Build(context.Background(), embedder, questions)
	if err != nil {
		t.Fatal(err)
	}
	classifier := language.NewClassifier(
		config.DefaultAllowedTags,
		config.DefaultRomanKeywords,
		func(string) (string, bool) { return "en", true },
		nil,
	)
	resolver := chat.NewResolver(entries, index, embedder, lexicon.MustDefault(),
		classifier, translate.NewNoop(), 0.5, nil)
	return NewServer(resolver, &config.ServerConfig{Host: "localhost", Port: 5000}, zap.NewNop())
}

func postChat(t *testing.T, s *Server, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleChat(w, req)
	return w
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) (string, float64) {
	t.Helper()
	var resp struct {
		Response   string  `json:"response"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body %q: %v", w.Body.String(), err)
	}
	return resp.Response, resp.Confidence
}

func TestHandleHome(t *testing.T) {
	s := newTestServer(t, []models.QAEntry{{Question: "q", Answer: "a"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.handleHome(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status=%d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "Welcome to the Agricultural Chatbot API!" {
		t.Errorf("message=%q", resp["message"])
	}
}

func TestHandleChat_PatternHit(t *testing.T) {
	s := newTestServer(t, []models.QAEntry{{Question: "q", Answer: "a"}})
	w := postChat(t, s, []byte(`{"message": "hello"}`))

	if w.Code != http.StatusOK {
		t.Errorf("status=%d", w.Code)
	}
	response, confidence := decodeChat(t, w)
	if response != "Hello! How can I assist you today?" {
		t.Errorf("response=%q", response)
	}
	if confidence != 1.0 {
		t.Errorf("confidence=%f", confidence)
	}
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	s := newTestServer(t, []models.QAEntry{{Question: "q", Answer: "a"}})
	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		w := postChat(t, s, []byte(body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status=%d, want 400", body, w.Code)
		}
		response, confidence := decodeChat(t, w)
		if response != "Please enter a valid question." {
			t.Errorf("body %s: response=%q", body, response)
		}
		if confidence != 0.0 {
			t.Errorf("body %s: confidence=%f", body, confidence)
		}
	}
}

func TestHandleChat_InvalidBody(t *testing.T) {
	s := newTestServer(t, []models.QAEntry{{Question: "q", Answer: "a"}})
	w := postChat(t, s, []byte(`not json`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status=%d", w.Code)
	}
}

func TestHandleChat_EmptyDataset(t *testing.T) {
	s := newTestServer(t, nil)
	w := postChat(t, s, []byte(`{"message": "what is the best fertilizer for wheat"}`))

	if w.Code != http.StatusOK {
		t.Errorf("status=%d", w.Code)
	}
	response, confidence := decodeChat(t, w)
	if response != chat.MsgNoData {
		t.Errorf("response=%q", response)
	}
	if confidence != 0.0 {
		t.Errorf("confidence=%f", confidence)
	}
}

func TestHandleChat_ConfidenceRounded(t *testing.T) {
	entries := []models.QAEntry{
		{Question: "how to grow wheat", Answer: "Sow in autumn."},
		{Question: "what is crop rotation", Answer: "Sequential cropping."},
	}
	s := newTestServer(t, entries)
	w := postChat(t, s, []byte(`{"message": "how is irrigation scheduled for paddy"}`))

	if w.Code != http.StatusOK {
		t.Errorf("status=%d", w.Code)
	}
	_, confidence := decodeChat(t, w)
	if confidence != utils.Round2(confidence) {
		t.Errorf("confidence=%v not rounded to 2 decimals", confidence)
	}
	if confidence < 0.0 || confidence > 1.0 {
		t.Errorf("confidence=%v outside [0,1]", confidence)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status=%d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status=%q", resp["status"])
	}
}
