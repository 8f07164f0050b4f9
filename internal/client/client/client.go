package client

import (
	"context"
	"io"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
)

// Client is the remote detection API as seen by the services layer.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	ChangePassword(ctx context.Context, current, next string) (*models.Message, error)

	CheckFile(ctx context.Context, kind models.MediaType, name string, content io.Reader) (*models.DetectionResult, error)
	CheckText(ctx context.Context, text string) (*models.DetectionResult, error)
	RiskScore(ctx context.Context, confidences []float64) (*models.RiskReport, error)

	Logs(ctx context.Context) ([]models.LogEntry, error)
	Stats(ctx context.Context) (*models.Stats, error)
	ChartData(ctx context.Context, mediaType string) ([]models.ChartBucket, error)
	SendFeedback(ctx context.Context, message string) (*models.Message, error)

	Ping(ctx context.Context) error
}
