package models

import "time"

// LogEntry is one past detection request, as listed by /dashboard/logs.
type LogEntry struct {
	ID          string    `json:"id"`
	RequestType MediaType `json:"request_type"`
	Result      string    `json:"result"`
	Confidence  float64   `json:"confidence,omitempty"`
	Timestamp   string    `json:"timestamp"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Time parses Timestamp. The API emits ISO-8601, with or without a zone;
// zoneless values are read as UTC. The zero time is returned when nothing matches.
func (l LogEntry) Time() time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, l.Timestamp); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Stats is the pre-aggregated summary from /dashboard/stats.
type Stats struct {
	Total       int `json:"total"`
	Fake        int `json:"fake"`
	Real        int `json:"real"`
	SafetyScore int `json:"safetyScore"`
}

// ChartBucket is one sparse daily bucket from /dashboard/chart-data.
// Name holds the date as YYYY-MM-DD.
type ChartBucket struct {
	Name  string `json:"name"`
	Total int    `json:"Total"`
	Fake  int    `json:"Fake"`
	Real  int    `json:"Real"`
}
