package response

import (
	"encoding/json"
	"time"
)

const (
	// MessageSuccess is the message carried by successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal detail from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope code for unexpected failures.
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Resp is the standard JSON response body for the admin API.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime is a timestamp that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
