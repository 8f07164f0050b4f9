package cli

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/Priyanshu7318/SHIELD/internal/client/dashboard"
	"github.com/Priyanshu7318/SHIELD/internal/client/form"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/client/services"
)

type fakeSession struct {
	mu   sync.Mutex
	user *models.User

	bootstrapUser *models.User
	bootstrapErr  error

	loginUser string
	loginPass string
	loginErr  error

	signupArgs [3]string
	signupErr  error

	logoutErr error

	passwdArgs [3]string
	passwdErr  error

	pingErr error
	pings   int
}

func (f *fakeSession) Bootstrap(context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = f.bootstrapUser
	return f.bootstrapUser, f.bootstrapErr
}

func (f *fakeSession) Login(_ context.Context, username, password string) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &models.User{ID: 1, Username: username}
	return &models.LoginResponse{AccessToken: "t1"}, nil
}

func (f *fakeSession) Signup(_ context.Context, username, email, password string) (*models.User, error) {
	f.signupArgs = [3]string{username, email, password}
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{ID: 2, Username: username, Email: email}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	return f.logoutErr
}

func (f *fakeSession) ChangePassword(_ context.Context, current, next, confirm string) (*models.Message, error) {
	f.passwdArgs = [3]string{current, next, confirm}
	if f.passwdErr != nil {
		return nil, f.passwdErr
	}
	return &models.Message{Message: "Password updated successfully"}, nil
}

func (f *fakeSession) CurrentUser() *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == nil {
		return nil
	}
	u := *f.user
	return &u
}

func (f *fakeSession) IsAuthenticated() bool {
	return f.CurrentUser() != nil
}

func (f *fakeSession) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeSession) setPingErr(err error) {
	f.mu.Lock()
	f.pingErr = err
	f.mu.Unlock()
}

type fakeDetection struct {
	kind   models.MediaType
	path   string
	text   string
	result *models.DetectionResult
	err    error

	risk    *models.RiskReport
	riskErr error

	feedback    string
	feedbackErr error
}

func (f *fakeDetection) CheckFile(_ context.Context, kind models.MediaType, path string) (*models.DetectionResult, error) {
	f.kind, f.path = kind, path
	return f.result, f.err
}

func (f *fakeDetection) CheckText(_ context.Context, text string) (*models.DetectionResult, error) {
	f.text = text
	return f.result, f.err
}

func (f *fakeDetection) State(models.MediaType) form.State[*models.DetectionResult] {
	return form.State[*models.DetectionResult]{}
}

func (f *fakeDetection) RiskScore(context.Context) (*models.RiskReport, error) {
	return f.risk, f.riskErr
}

func (f *fakeDetection) SendFeedback(_ context.Context, message string) (*models.Message, error) {
	f.feedback = message
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	return &models.Message{Message: "Feedback received"}, nil
}

func (f *fakeDetection) FeedbackState() form.State[*models.Message] {
	return form.State[*models.Message]{}
}

type fakeDashboard struct {
	overview *services.Overview
	err      error

	weekType string
	days     []dashboard.Day
	weekErr  error
}

func (f *fakeDashboard) Load(context.Context) (*services.Overview, error) {
	return f.overview, f.err
}

func (f *fakeDashboard) Week(_ context.Context, mediaType string) ([]dashboard.Day, error) {
	f.weekType = mediaType
	return f.days, f.weekErr
}

// stubInputs replaces the interactive prompts with scripted answers.
// Texts and passwords are consumed in order.
func stubInputs(t interface{ Cleanup(func()) }, texts []string, passwords [][]byte) *[]string {
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	var prompts []string

	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getMultiline = getSimpleText
	getPassword = func(_ io.Writer, prompt string) ([]byte, error) {
		prompts = append(prompts, prompt)
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return p, nil
	}

	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
	return &prompts
}
