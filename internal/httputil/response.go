// Package httputil owns the canonical response envelopes and the error
// normalizer: every success and every failure leaves the API through one
// of the writers here, so clients see exactly one shape per outcome.
package httputil

import (
	"encoding/json"
	"net/http"
)

// SuccessEnvelope is the canonical success shape. Count is present only
// on list responses, Message only on confirmation responses.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondJSON writes a JSON response with the given status code. It
// marshals first so an encoding failure can still become a clean 500
// instead of a half-written body.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Internal Server Error","name":"Internal"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondData writes {"success":true,"data":...}.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, SuccessEnvelope{Success: true, Data: data})
}

// RespondList writes {"success":true,"count":N,"data":[...]}.
func RespondList(w http.ResponseWriter, count int, data interface{}) {
	RespondJSON(w, http.StatusOK, SuccessEnvelope{Success: true, Count: &count, Data: data})
}

// RespondMessage writes {"success":true,"message":...}.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, SuccessEnvelope{Success: true, Message: message})
}
