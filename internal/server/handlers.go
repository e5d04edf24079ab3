package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/devaniket16/Agriassist-Chatbot/internal/models"
	"github.com/devaniket16/Agriassist-Chatbot/pkg/utils"
)

// welcomeMessage is the fixed greeting served on the root path.
const welcomeMessage = "Welcome to the Agricultural Chatbot API!"

// invalidRequestMessage is returned for an absent or empty chat message.
const invalidRequestMessage = "Please enter a valid question."

// chatResponse is the wire format of a chat reply. Confidence is rounded to
// two decimals here at the boundary, not inside the resolver.
type chatResponse struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, chatResponse{Response: invalidRequestMessage, Confidence: 0.0})
		return
	}
	if err := req.Validate(); err != nil {
		s.respondJSON(w, http.StatusBadRequest, chatResponse{Response: invalidRequestMessage, Confidence: 0.0})
		return
	}
	s.logger.Debug("chat request", zap.String("message", utils.Truncate(req.Message, 200)))
	result := s.resolver.Answer(r.Context(), req.Message)
	s.respondJSON(w, http.StatusOK, chatResponse{
		Response:   result.Response,
		Confidence: utils.Round2(result.Confidence),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
