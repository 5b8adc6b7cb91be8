package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// envelope is the body of every response that does not carry projects.
type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details []any  `json:"details,omitempty"`
}

func Index(w http.ResponseWriter) {
	Message(w, http.StatusOK, "ytcatalog index")
}

func Message(w http.ResponseWriter, status int, message string, details ...any) {
	writeEnvelope(w, status, envelope{Message: message, Details: details})
}

func Error(w http.ResponseWriter, status int, message string, err error, details ...any) {
	writeEnvelope(w, status, envelope{Message: message, Error: err.Error(), Details: details})
}

// writeEnvelope falls back to a hand formatted body when details do not
// marshal, keeping the status.
func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	if err := JSON(w, status, env); err != nil {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"message": %q, "error": %q}`, env.Message, err.Error())
	}
}

// JSON writes v as the response body with the given status. Nothing is
// written when v cannot be marshalled.
func JSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.WriteHeader(status)
	w.Write(body)

	return nil
}
