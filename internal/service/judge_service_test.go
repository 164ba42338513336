package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pylearn_backend/internal/config"
)

func TestJudgeService_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasPrefix(r.URL.Path, "/submissions") {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("wait") != "true" {
			t.Fatalf("expected wait=true, got %q", r.URL.Query().Get("wait"))
		}
		if r.Header.Get("X-RapidAPI-Key") != "k" || r.Header.Get("X-RapidAPI-Host") != "h" {
			t.Fatalf("missing API headers")
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["source_code"] != "print(input())" || body["stdin"] != "42" {
			t.Fatalf("unexpected submission body: %v", body)
		}
		if body["language_id"] != float64(71) {
			t.Fatalf("expected language_id 71, got %v", body["language_id"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"stdout": "42\n",
			"status": map[string]interface{}{"id": 3, "description": "Accepted"},
		})
	}))
	defer server.Close()

	svc := NewJudgeService(config.JudgeConfig{
		URL:        server.URL,
		APIKey:     "k",
		Host:       "h",
		LanguageID: 71,
	})

	result, err := svc.Run(context.Background(), "print(input())", "42")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Stdout != "42\n" || result.Status != "Accepted" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestJudgeService_CompileErrorFallsBackToStderr(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"compile_output": "SyntaxError: invalid syntax",
			"status":         map[string]interface{}{"id": 6, "description": "Compilation Error"},
		})
	}))
	defer server.Close()

	svc := NewJudgeService(config.JudgeConfig{URL: server.URL, LanguageID: 71})

	result, err := svc.Run(context.Background(), "print(", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Stderr != "SyntaxError: invalid syntax" {
		t.Fatalf("compile output must surface as stderr, got %q", result.Stderr)
	}
}

func TestJudgeService_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewJudgeService(config.JudgeConfig{URL: server.URL, LanguageID: 71})

	if _, err := svc.Run(context.Background(), "print(1)", ""); err == nil {
		t.Fatalf("expected an error for a non-2xx judge response")
	}
}
