package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_Time(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want time.Time
	}{
		{name: "rfc3339 with zone", ts: "2026-10-15T08:30:00Z", want: time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)},
		{name: "python isoformat", ts: "2026-10-15T08:30:00.123456", want: time.Date(2026, 10, 15, 8, 30, 0, 123456000, time.UTC)},
		{name: "date only", ts: "2026-10-15", want: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", ts: "yesterday", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogEntry{Timestamp: tt.ts}.Time()
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestMediaType_IsFile(t *testing.T) {
	assert.True(t, MediaImage.IsFile())
	assert.True(t, MediaAudio.IsFile())
	assert.True(t, MediaVideo.IsFile())
	assert.False(t, MediaText.IsFile())
	assert.False(t, MediaType("pdf").IsFile())
}
