package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// envelope is the wrapper every successful response is serialized into.
type envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// errorEnvelope is the wrapper every error response is serialized into.
type errorEnvelope struct {
	Success   bool      `json:"success"`
	Error     errorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// errorBody carries the machine-readable error code and a human message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// respondJSON writes a JSON response with proper error handling
func (a *API) respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorw("Failed to encode JSON response",
			"error", err,
			"data_type", fmt.Sprintf("%T", data))
		// Response already started, can't send error to client
	}
}

// respondData wraps a payload in the success envelope.
func (a *API) respondData(w http.ResponseWriter, data interface{}, statusCode int) {
	a.respondJSON(w, envelope{
		Success:   true,
		Data:      data,
		Timestamp: timestamp(),
	}, statusCode)
}

// writeError writes an enveloped error response and logs it.
func (a *API) writeError(w http.ResponseWriter, statusCode int, code, message string, err error) {
	if err != nil {
		a.logger.Errorw(message,
			"error", err.Error(),
			"status_code", statusCode)
	}
	a.respondJSON(w, errorEnvelope{
		Success:   false,
		Error:     errorBody{Code: code, Message: message},
		Timestamp: timestamp(),
	}, statusCode)
}

// getRealIP returns the client IP, honoring X-Forwarded-For only when the
// deployment says a trusted proxy fronts the service.
func getRealIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// X-Forwarded-For can contain multiple IPs, the first one is the
			// original client.
			first, _, _ := strings.Cut(xff, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
