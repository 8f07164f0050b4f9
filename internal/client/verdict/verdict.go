// Package verdict interprets the verdict strings returned by the detection API.
//
// The API does not send a typed verdict. Its contract is the label text:
// a label containing "Fake" or "AI" marks synthetic content, every other
// label is treated as authentic. Labels containing "Error" are authentic
// for counting purposes but are reported separately so they can be shown
// as failures. No other synonyms are recognised.
package verdict

import "strings"

// Known labels emitted by the API.
const (
	FakeAIGenerated     = "Fake (AI Generated)"
	FakeAudioDeepfake   = "Fake (Audio Deepfake)"
	FakeDeepfakeImage   = "Fake (Deepfake Image)"
	FakeHighProbability = "Fake (High Probability)"
	RealHumanWritten    = "Real (Human Written)"
	RealAuthenticAudio  = "Real (Authentic Audio)"
	RealAuthentic       = "Real (Authentic)"
	RealSafeFallback    = "Real (Safe Fallback)"
)

// Kind is the classification of a verdict label.
type Kind int

const (
	Authentic Kind = iota
	Synthetic
	Errored
)

func (k Kind) String() string {
	switch k {
	case Synthetic:
		return "synthetic"
	case Errored:
		return "error"
	default:
		return "authentic"
	}
}

// IsSynthetic reports whether label marks synthetic (fake or AI-made) content.
func IsSynthetic(label string) bool {
	return strings.Contains(label, "Fake") || strings.Contains(label, "AI")
}

// Classify maps a label to its Kind. Synthetic takes precedence over Errored.
func Classify(label string) Kind {
	switch {
	case IsSynthetic(label):
		return Synthetic
	case strings.Contains(label, "Error"):
		return Errored
	default:
		return Authentic
	}
}
