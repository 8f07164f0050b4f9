package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// NetworkErrorMessage is shown to users when no response reached the client.
const NetworkErrorMessage = "Unable to connect to the server. Please check if the backend is running."

// RemoteError is a response that arrived with a non-success status.
type RemoteError struct {
	StatusCode int
	// Detail is the server's message, with field errors joined by ", ".
	Detail string
	Body   []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Detail)
}

// Is lets errors.Is(err, ErrUnauthorized) match rejected credentials.
func (e *RemoteError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

type fieldError struct {
	Msg string `json:"msg"`
}

func newRemoteError(status int, body []byte) *RemoteError {
	return &RemoteError{StatusCode: status, Detail: parseDetail(status, body), Body: body}
}

// parseDetail extracts "detail" from an error body. A string is used as is,
// a list of field errors is joined by their "msg". Without a usable detail
// the status and raw body are reported instead.
func parseDetail(status int, body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 || bytes.Equal(envelope.Detail, []byte("null")) {
		return statusDetail(status, body)
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		if s != "" {
			return s
		}
		return statusDetail(status, body)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			var fe fieldError
			if err := json.Unmarshal(item, &fe); err == nil && fe.Msg != "" {
				msgs = append(msgs, fe.Msg)
				continue
			}
			msgs = append(msgs, string(item))
		}
		return strings.Join(msgs, ", ")
	}

	return string(envelope.Detail)
}

func statusDetail(status int, body []byte) string {
	return fmt.Sprintf("Server Error: %d - %s", status, strings.TrimSpace(string(body)))
}

// MessageFor renders err as a single line suitable for showing to a user.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Detail
	}
	if errors.Is(err, ErrUnavailable) {
		return NetworkErrorMessage
	}
	return err.Error()
}
