package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
)

var errUnexpectedCall = errors.New("unexpected call")

type call struct {
	Method string
	Token  string
}

// fakeClient implements client.Client for unit tests. Every call is recorded
// together with the credential visible at that moment; unset hooks fail.
type fakeClient struct {
	cred *client.Credential

	mu    sync.Mutex
	calls []call

	loginFn     func(ctx context.Context, username, password string) (*models.LoginResponse, error)
	meFn        func(ctx context.Context) (*models.User, error)
	signupFn    func(ctx context.Context, username, email, password string) (*models.User, error)
	changePwFn  func(ctx context.Context, current, next string) (*models.Message, error)
	checkFileFn func(ctx context.Context, kind models.MediaType, name string, content io.Reader) (*models.DetectionResult, error)
	checkTextFn func(ctx context.Context, text string) (*models.DetectionResult, error)
	riskFn      func(ctx context.Context, confidences []float64) (*models.RiskReport, error)
	logsFn      func(ctx context.Context) ([]models.LogEntry, error)
	statsFn     func(ctx context.Context) (*models.Stats, error)
	chartFn     func(ctx context.Context, mediaType string) ([]models.ChartBucket, error)
	feedbackFn  func(ctx context.Context, message string) (*models.Message, error)
	pingErr     error
}

func newFakeClient(cred *client.Credential) *fakeClient {
	return &fakeClient{cred: cred}
}

func (f *fakeClient) record(method string) {
	token := ""
	if f.cred != nil {
		token = f.cred.Get()
	}
	f.mu.Lock()
	f.calls = append(f.calls, call{Method: method, Token: token})
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	f.record("Login")
	if f.loginFn == nil {
		return nil, errUnexpectedCall
	}
	return f.loginFn(ctx, username, password)
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	f.record("Me")
	if f.meFn == nil {
		return nil, errUnexpectedCall
	}
	return f.meFn(ctx)
}

func (f *fakeClient) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	f.record("Signup")
	if f.signupFn == nil {
		return nil, errUnexpectedCall
	}
	return f.signupFn(ctx, username, email, password)
}

func (f *fakeClient) ChangePassword(ctx context.Context, current, next string) (*models.Message, error) {
	f.record("ChangePassword")
	if f.changePwFn == nil {
		return nil, errUnexpectedCall
	}
	return f.changePwFn(ctx, current, next)
}

func (f *fakeClient) CheckFile(ctx context.Context, kind models.MediaType, name string, content io.Reader) (*models.DetectionResult, error) {
	f.record("CheckFile")
	if f.checkFileFn == nil {
		return nil, errUnexpectedCall
	}
	return f.checkFileFn(ctx, kind, name, content)
}

func (f *fakeClient) CheckText(ctx context.Context, text string) (*models.DetectionResult, error) {
	f.record("CheckText")
	if f.checkTextFn == nil {
		return nil, errUnexpectedCall
	}
	return f.checkTextFn(ctx, text)
}

func (f *fakeClient) RiskScore(ctx context.Context, confidences []float64) (*models.RiskReport, error) {
	f.record("RiskScore")
	if f.riskFn == nil {
		return nil, errUnexpectedCall
	}
	return f.riskFn(ctx, confidences)
}

func (f *fakeClient) Logs(ctx context.Context) ([]models.LogEntry, error) {
	f.record("Logs")
	if f.logsFn == nil {
		return nil, errUnexpectedCall
	}
	return f.logsFn(ctx)
}

func (f *fakeClient) Stats(ctx context.Context) (*models.Stats, error) {
	f.record("Stats")
	if f.statsFn == nil {
		return nil, errUnexpectedCall
	}
	return f.statsFn(ctx)
}

func (f *fakeClient) ChartData(ctx context.Context, mediaType string) ([]models.ChartBucket, error) {
	f.record("ChartData")
	if f.chartFn == nil {
		return nil, errUnexpectedCall
	}
	return f.chartFn(ctx, mediaType)
}

func (f *fakeClient) SendFeedback(ctx context.Context, message string) (*models.Message, error) {
	f.record("SendFeedback")
	if f.feedbackFn == nil {
		return nil, errUnexpectedCall
	}
	return f.feedbackFn(ctx, message)
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.record("Ping")
	return f.pingErr
}

// memRepo is an in-memory credentials.Repository.
type memRepo struct {
	mu       sync.Mutex
	token    string
	loadErr  error
	saveErr  error
	clearErr error
	clears   int
}

func (r *memRepo) Load(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, r.loadErr
}

func (r *memRepo) Save(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.token = token
	return nil
}

func (r *memRepo) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	if r.clearErr != nil {
		return r.clearErr
	}
	r.token = ""
	return nil
}

func (r *memRepo) Token() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}

func remoteErr(status int, detail string) *client.RemoteError {
	return &client.RemoteError{StatusCode: status, Detail: detail}
}

var (
	alice        = &models.User{ID: 1, Username: "alice", Email: "a@x.com"}
	unavailable  = errors.Join(client.ErrUnavailable, errors.New("dial tcp: connection refused"))
	unauthorized = remoteErr(http.StatusUnauthorized, "Could not validate credentials")
)
