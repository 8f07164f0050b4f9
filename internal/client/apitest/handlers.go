package apitest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/client/verdict"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func withUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func userFrom(ctx context.Context) models.User {
	u, _ := ctx.Value(userKey{}).(models.User)
	return u
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, fieldRequired("body"))
		return false
	}
	return true
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Message{Message: "Welcome to Shield API"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[req.Username]
	s.mu.Unlock()
	if !ok || !checkPassword(acc.passwordHash, req.Password) {
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: s.TokenFor(req.Username), TokenType: "bearer"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[req.Username]; exists {
		writeDetail(w, http.StatusBadRequest, "Username already registered")
		return
	}
	for _, acc := range s.accounts {
		if acc.user.Email == req.Email {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
	}

	u, err := s.addUserLocked(req.Username, req.Email, req.Password)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userFrom(r.Context()))
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := userFrom(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.accounts[user.Username]
	if !checkPassword(acc.passwordHash, req.CurrentPassword) {
		writeDetail(w, http.StatusBadRequest, "Incorrect current password")
		return
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	acc.passwordHash = hash
	writeJSON(w, http.StatusOK, models.Message{Message: "Password updated successfully"})
}

func (s *Server) detect(user models.User, kind models.MediaType) models.DetectionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.verdicts[kind]
	s.logs[user.Username] = append(s.logs[user.Username], models.LogEntry{
		ID:          uuid.NewString(),
		RequestType: kind,
		Result:      result.Result,
		Confidence:  result.Confidence,
		Timestamp:   s.now().UTC().Format("2006-01-02T15:04:05.000000"),
	})
	return result
}

func (s *Server) handleCheckFile(w http.ResponseWriter, r *http.Request) {
	kind := models.MediaType(mux.Vars(r)["kind"])

	file, _, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, fieldRequired("body", "file"))
		return
	}
	defer file.Close()
	if _, err := io.Copy(io.Discard, file); err != nil {
		writeDetail(w, http.StatusBadRequest, "Upload interrupted")
		return
	}

	writeJSON(w, http.StatusOK, s.detect(userFrom(r.Context()), kind))
}

func (s *Server) handleCheckText(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")
	if strings.TrimSpace(text) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, fieldRequired("body", "text"))
		return
	}
	writeJSON(w, http.StatusOK, s.detect(userFrom(r.Context()), models.MediaText))
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	var req models.RiskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Confidences) == 0 {
		writeDetail(w, http.StatusBadRequest, "Confidences list cannot be empty")
		return
	}

	var sum float64
	for _, c := range req.Confidences {
		sum += c
	}
	avg := sum / float64(len(req.Confidences))

	level := "Low"
	switch {
	case avg > 0.8:
		level = "High"
	case avg > 0.5:
		level = "Medium"
	}
	writeJSON(w, http.StatusOK, models.RiskReport{RiskLevel: level, AverageConfidence: avg})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	s.mu.Lock()
	logs := append([]models.LogEntry{}, s.logs[user.Username]...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	s.mu.Lock()
	logs := s.logs[user.Username]
	stats := models.Stats{Total: len(logs), SafetyScore: 100}
	for _, l := range logs {
		if verdict.IsSynthetic(l.Result) {
			stats.Fake++
		}
	}
	s.mu.Unlock()

	stats.Real = stats.Total - stats.Fake
	if stats.Total > 0 {
		stats.SafetyScore = int(float64(stats.Real)/float64(stats.Total)*100 + 0.5)
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	chart := append([]models.ChartBucket{}, s.chart...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, chart)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.mu.Lock()
	s.feedback = append(s.feedback, req.Message)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.Message{Message: "Feedback received"})
}
