package models

// MediaType names a kind of submitted content, as used in request logs.
type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaText  MediaType = "text"
	MediaImage MediaType = "image"
)

// MediaTypes lists every media type in dashboard order.
var MediaTypes = []MediaType{MediaVideo, MediaAudio, MediaText, MediaImage}

// IsFile reports whether the media type is submitted as a file upload.
func (m MediaType) IsFile() bool {
	switch m {
	case MediaVideo, MediaAudio, MediaImage:
		return true
	}
	return false
}

// DetectionResult is the verdict of a single check. It is never persisted.
type DetectionResult struct {
	Result     string  `json:"result"`
	Confidence float64 `json:"confidence"`
}

// RiskRequest is the body of POST /risk_score.
type RiskRequest struct {
	Confidences []float64 `json:"confidences"`
}

// RiskReport is the server's aggregate risk over a set of confidences.
type RiskReport struct {
	RiskLevel         string  `json:"risk_level"`
	AverageConfidence float64 `json:"average_confidence"`
}

// FeedbackRequest is the body of POST /dashboard/feedback.
type FeedbackRequest struct {
	Message string `json:"message"`
}
