package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	for _, tc := range []struct {
		name      string
		write     func(w http.ResponseWriter)
		expStatus int
		expBody   string
	}{
		{
			name:      "message",
			write:     func(w http.ResponseWriter) { Message(w, http.StatusOK, "ok") },
			expStatus: http.StatusOK,
			expBody:   `{"message":"ok"}`,
		},
		{
			name:      "message with details",
			write:     func(w http.ResponseWriter) { Message(w, http.StatusAccepted, "queued", "a", 1) },
			expStatus: http.StatusAccepted,
			expBody:   `{"message":"queued","details":["a",1]}`,
		},
		{
			name: "error",
			write: func(w http.ResponseWriter) {
				Error(w, http.StatusConflict, "project already exists", errors.New("duplicate"))
			},
			expStatus: http.StatusConflict,
			expBody:   `{"message":"project already exists","error":"duplicate"}`,
		},
		{
			name: "details that do not marshal",
			write: func(w http.ResponseWriter) {
				Error(w, http.StatusBadRequest, "invalid project", errors.New("bad"), make(chan int))
			},
			expStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)
			assert.Equal(t, tc.expStatus, rec.Code)
			if tc.expBody != "" {
				assert.JSONEq(t, tc.expBody, rec.Body.String())
				return
			}
			assert.Contains(t, rec.Body.String(), `"message": "invalid project"`)
		})
	}
}
