// Package apitest runs an in-process fake of the detection API for tests.
//
// The fake mirrors the real backend's routes, payloads and error shapes:
// HS256 bearer tokens, FastAPI-style {"detail": ...} errors, per-user
// request logs and aggregates computed from them.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// Request is what the fake saw of one incoming call.
type Request struct {
	Method        string
	Path          string
	Authorization string
}

type account struct {
	user         models.User
	passwordHash []byte
}

type failure struct {
	status int
	body   any
}

type Server struct {
	*httptest.Server

	secret []byte
	now    func() time.Time

	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account
	logs     map[string][]models.LogEntry
	verdicts map[models.MediaType]models.DetectionResult
	chart    []models.ChartBucket
	feedback []string
	requests []Request
	failures map[string]failure
}

// New starts a fake API and stops it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:   []byte("apitest-secret"),
		now:      time.Now,
		nextID:   1,
		accounts: make(map[string]*account),
		logs:     make(map[string][]models.LogEntry),
		verdicts: map[models.MediaType]models.DetectionResult{
			models.MediaImage: {Result: "Real (Authentic)", Confidence: 0.91},
			models.MediaAudio: {Result: "Real (Authentic Audio)", Confidence: 0.88},
			models.MediaVideo: {Result: "Real (Authentic)", Confidence: 0.9},
			models.MediaText:  {Result: "Real (Human Written)", Confidence: 0.95},
		},
		failures: make(map[string]failure),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.record, s.injectFailures)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireUser)
	authed.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/auth/change-password", s.handleChangePassword).Methods(http.MethodPost)
	authed.HandleFunc("/check_text", s.handleCheckText).Methods(http.MethodPost)
	authed.HandleFunc("/check_{kind:image|audio|video}", s.handleCheckFile).Methods(http.MethodPost)
	authed.HandleFunc("/risk_score", s.handleRisk).Methods(http.MethodPost)
	authed.HandleFunc("/dashboard/logs", s.handleLogs).Methods(http.MethodGet)
	authed.HandleFunc("/dashboard/stats", s.handleStats).Methods(http.MethodGet)
	authed.HandleFunc("/dashboard/chart-data", s.handleChart).Methods(http.MethodGet)
	authed.HandleFunc("/dashboard/feedback", s.handleFeedback).Methods(http.MethodPost)

	return r
}

// AddUser registers an account directly, bypassing /auth/signup.
func (s *Server) AddUser(username, email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.addUserLocked(username, email, password)
	if err != nil {
		panic(err)
	}
	return u
}

func (s *Server) addUserLocked(username, email, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{ID: s.nextID, Username: username, Email: email}
	s.nextID++
	s.accounts[username] = &account{user: u, passwordHash: hash}
	return u, nil
}

// TokenFor issues a valid bearer token for username.
func (s *Server) TokenFor(username string) string {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

// SetVerdict fixes the result returned for a media type.
func (s *Server) SetVerdict(kind models.MediaType, result string, confidence float64) {
	s.mu.Lock()
	s.verdicts[kind] = models.DetectionResult{Result: result, Confidence: confidence}
	s.mu.Unlock()
}

// SetChartData fixes the buckets returned by /dashboard/chart-data.
func (s *Server) SetChartData(buckets []models.ChartBucket) {
	s.mu.Lock()
	s.chart = buckets
	s.mu.Unlock()
}

// AddLog appends a request log entry for username.
func (s *Server) AddLog(username string, entry models.LogEntry) {
	s.mu.Lock()
	s.logs[username] = append(s.logs[username], entry)
	s.mu.Unlock()
}

// Fail makes every request to path answer with status and body until cleared
// with Fail(path, 0, nil).
func (s *Server) Fail(path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, path)
		return
	}
	s.failures[path] = failure{status: status, body: body}
}

// Requests returns a copy of every request seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Feedback returns the feedback messages received so far.
func (s *Server) Feedback() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.feedback...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.URL.Path]
		s.mu.Unlock()
		if ok {
			writeJSON(w, f.status, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type userKey struct{}

func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var claims jwt.RegisteredClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.mu.Lock()
		acc, found := s.accounts[claims.Subject]
		s.mu.Unlock()
		if !found {
			writeDetail(w, http.StatusNotFound, "User not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), acc.user)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// fieldRequired mimics FastAPI's 422 body for a missing field.
func fieldRequired(loc ...string) []map[string]any {
	return []map[string]any{{"loc": loc, "msg": "field required", "type": "value_error.missing"}}
}
