package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Priyanshu7318/SHIELD/internal/client/client"
	"github.com/Priyanshu7318/SHIELD/internal/client/form"
	"github.com/Priyanshu7318/SHIELD/internal/client/models"
	"github.com/Priyanshu7318/SHIELD/internal/filex"
	"github.com/Priyanshu7318/SHIELD/internal/logging"
)

// riskWindow bounds how many recent confidences feed RiskScore.
const riskWindow = 20

type detectionForm = form.Form[*models.DetectionResult]

// DetectionService submits content for analysis. Each media type has its
// own form, so one check of each kind may be in flight at a time.
type DetectionService interface {
	CheckFile(ctx context.Context, kind models.MediaType, path string) (*models.DetectionResult, error)
	CheckText(ctx context.Context, text string) (*models.DetectionResult, error)
	State(kind models.MediaType) form.State[*models.DetectionResult]
	RiskScore(ctx context.Context) (*models.RiskReport, error)
	SendFeedback(ctx context.Context, message string) (*models.Message, error)
	FeedbackState() form.State[*models.Message]
}

type detectionService struct {
	client client.Client
	log    logging.Logger

	forms    map[models.MediaType]*detectionForm
	feedback form.Form[*models.Message]

	mu          sync.Mutex
	confidences []float64
}

func NewDetectionService(c client.Client, log logging.Logger) DetectionService {
	forms := make(map[models.MediaType]*detectionForm, len(models.MediaTypes))
	for _, mt := range models.MediaTypes {
		forms[mt] = &detectionForm{}
	}
	return &detectionService{client: c, log: log, forms: forms}
}

// CheckFile uploads the file at path to the detector for kind.
func (s *detectionService) CheckFile(ctx context.Context, kind models.MediaType, path string) (*models.DetectionResult, error) {
	if !kind.IsFile() {
		return nil, validationError("%q is not a file media type", kind)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, validationError("a file is required")
	}

	return s.submit(ctx, kind, func(ctx context.Context) (*models.DetectionResult, error) {
		f, fi, err := filex.OpenUpload(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		s.log.Debug(ctx, "uploading", "type", kind, "file", fi.Name(), "size", fi.Size())
		return s.client.CheckFile(ctx, kind, fi.Name(), f)
	})
}

func (s *detectionService) CheckText(ctx context.Context, text string) (*models.DetectionResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, validationError("text is required")
	}
	return s.submit(ctx, models.MediaText, func(ctx context.Context) (*models.DetectionResult, error) {
		return s.client.CheckText(ctx, text)
	})
}

func (s *detectionService) submit(ctx context.Context, kind models.MediaType, fn func(context.Context) (*models.DetectionResult, error)) (*models.DetectionResult, error) {
	res, err := s.forms[kind].Submit(ctx, fn)
	if err != nil {
		if !errors.Is(err, form.ErrBusy) {
			s.log.Warn(ctx, "check failed", "type", kind, "error", err)
		}
		return nil, fmt.Errorf("check %s: %w", kind, err)
	}

	s.log.Info(ctx, "check finished", "type", kind, "result", res.Result, "confidence", res.Confidence)
	s.remember(res.Confidence)
	return res, nil
}

func (s *detectionService) remember(confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confidences = append(s.confidences, confidence)
	if n := len(s.confidences); n > riskWindow {
		s.confidences = append(s.confidences[:0:0], s.confidences[n-riskWindow:]...)
	}
}

// State returns the form state for kind. Unknown kinds report Idle.
func (s *detectionService) State(kind models.MediaType) form.State[*models.DetectionResult] {
	f, ok := s.forms[kind]
	if !ok {
		return form.State[*models.DetectionResult]{}
	}
	return f.State()
}

// RiskScore asks the API to grade the confidences of the recent checks made
// in this process.
func (s *detectionService) RiskScore(ctx context.Context) (*models.RiskReport, error) {
	s.mu.Lock()
	confidences := append([]float64(nil), s.confidences...)
	s.mu.Unlock()

	if len(confidences) == 0 {
		return nil, validationError("no checks have been run yet")
	}

	report, err := s.client.RiskScore(ctx, confidences)
	if err != nil {
		s.log.Warn(ctx, "risk score failed", "error", err)
		return nil, fmt.Errorf("risk score: %w", err)
	}
	return report, nil
}

func (s *detectionService) SendFeedback(ctx context.Context, message string) (*models.Message, error) {
	if strings.TrimSpace(message) == "" {
		return nil, validationError("message is required")
	}

	ack, err := s.feedback.Submit(ctx, func(ctx context.Context) (*models.Message, error) {
		return s.client.SendFeedback(ctx, message)
	})
	if err != nil {
		s.log.Warn(ctx, "feedback failed", "error", err)
		return nil, fmt.Errorf("send feedback: %w", err)
	}
	return ack, nil
}

func (s *detectionService) FeedbackState() form.State[*models.Message] {
	return s.feedback.State()
}
