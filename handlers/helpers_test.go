package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/services"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"player not found", services.ErrPlayerNotFound, http.StatusNotFound},
		{"match not found", services.ErrMatchNotFound, http.StatusNotFound},
		{"participation not found", services.ErrParticipationNotFound, http.StatusNotFound},
		{"already registered", services.ErrAlreadyRegistered, http.StatusConflict},
		{"match finished", models.ErrMatchFinished, http.StatusConflict},
		{"match cancelled", models.ErrMatchCancelled, http.StatusConflict},
		{"validation failed", services.ErrValidationFailed, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"no fields", services.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{"invalid team", services.ErrInvalidTeam, http.StatusBadRequest},
		{"invalid winner", services.ErrInvalidWinner, http.StatusBadRequest},
		{"invalid limit", services.ErrInvalidLimit, http.StatusBadRequest},
		{"invalid min matches", services.ErrInvalidMinMatches, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/matches", nil)
			rec := httptest.NewRecorder()

			mapServiceErrorToHTTP(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name": "Matías"}`, ""},
		{"empty body", ``, "body must not be empty"},
		{"malformed", `{"name":`, "badly-formed"},
		{"unknown field", `{"apodo": "Mati"}`, "unknown key"},
		{"wrong type", `{"name": 3}`, "incorrect JSON type"},
		{"multiple values", `{"name": "a"}{"name": "b"}`, "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst payload
			err := readJSON(rec, req, &dst)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("readJSON() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("readJSON() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
