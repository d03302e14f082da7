// Package shared holds the response envelope, request decoding and
// validation helpers, and trace-ID context carriage used by every handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// TimestampLayout is the wire format of every envelope timestamp.
const TimestampLayout = "02-01-2006 15:04"

// Envelope message templates.
const (
	MessageOperationOK = "Successful operation: %s"
	MessageCreated     = "%s created successfully"
)

// Timestamp renders a time.Time as "dd-MM-yyyy HH:mm" in JSON.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(TimestampLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(TimestampLayout, strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// SuccessResponse is the uniform success envelope. Data is omitted for
// operations that have nothing to return.
type SuccessResponse struct {
	StatusCode int       `json:"statusCode"`
	Timestamp  Timestamp `json:"timestamp"`
	Message    string    `json:"message"`
	Data       any       `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope. Exactly one of ErrorMessage
// and Errors is set: a single message for business and internal failures, a
// field-to-message map for validation failures.
type ErrorResponse struct {
	StatusCode   int               `json:"statusCode"`
	Timestamp    Timestamp         `json:"timestamp"`
	APIPath      string            `json:"apiPath"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes the success envelope. Pass nil data to omit the
// data field.
func RespondWithSuccess(w http.ResponseWriter, status int, message string, data any) {
	RespondWithJSON(w, status, SuccessResponse{
		StatusCode: status,
		Timestamp:  Timestamp(time.Now()),
		Message:    message,
		Data:       data,
	})
}

// RespondWithError writes the single-message error envelope and logs the
// underlying error, when given, with the request's trace ID. 5xx responses
// log at ERROR, everything else at DEBUG.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logError(r, status, message, err)
	RespondWithJSON(w, status, ErrorResponse{
		StatusCode:   status,
		Timestamp:    Timestamp(time.Now()),
		APIPath:      apiPath(r),
		ErrorMessage: message,
	})
}

// RespondWithValidationErrors writes the field-map error envelope with
// status 400.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	logError(r, http.StatusBadRequest, "validation failed", nil)
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Timestamp:  Timestamp(time.Now()),
		APIPath:    apiPath(r),
		Errors:     fields,
	})
}

func apiPath(r *http.Request) string {
	return "uri=" + r.URL.Path
}

func logError(r *http.Request, status int, message string, err error) {
	attrs := []any{
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method,
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
		return
	}
	slog.Debug("sending error response", attrs...)
}
