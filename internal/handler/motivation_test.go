package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nelld28/chorebender/internal/model"
)

type stubGenerator struct {
	message string
	err     error

	gotElement  model.Element
	gotProgress float64
}

func (s *stubGenerator) Generate(_ context.Context, element model.Element, progress float64) (string, error) {
	s.gotElement = element
	s.gotProgress = progress
	return s.message, s.err
}

func postMotivate(t *testing.T, h *MotivationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/motivate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	return rec
}

func TestMotivationGenerate(t *testing.T) {
	stub := &stubGenerator{message: "Keep flowing like water!"}
	h := NewMotivationHandler(stub, slog.Default())

	rec := postMotivate(t, h, `{"element":"water","progress_percentage":42.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != stub.message {
		t.Errorf("message = %q, want %q", resp.Message, stub.message)
	}
	if stub.gotElement != model.ElementWater || stub.gotProgress != 42.5 {
		t.Errorf("generator called with (%s, %v)", stub.gotElement, stub.gotProgress)
	}
}

func TestMotivationRejectsInvalidInput(t *testing.T) {
	h := NewMotivationHandler(&stubGenerator{message: "m"}, slog.Default())

	for name, body := range map[string]string{
		"bad element":       `{"element":"metal","progress_percentage":10}`,
		"negative progress": `{"element":"air","progress_percentage":-1}`,
		"over 100":          `{"element":"air","progress_percentage":101}`,
		"bad json":          `{nope`,
	} {
		rec := postMotivate(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", name, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestMotivationBackendFailure(t *testing.T) {
	stub := &stubGenerator{err: errors.New("model unavailable")}
	h := NewMotivationHandler(stub, slog.Default())

	rec := postMotivate(t, h, `{"element":"fire","progress_percentage":80}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestMotivationUnconfigured(t *testing.T) {
	h := NewMotivationHandler(nil, slog.Default())

	rec := postMotivate(t, h, `{"element":"earth","progress_percentage":50}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
