package mastery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientEvaluate(t *testing.T) {
	var got map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/infer" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score": 0.72}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL+"/", time.Second)
	result, err := client.Evaluate(context.Background(), Attempt{Correct: true, TimeMs: 4200, HintCount: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 0.72 || result.Tier != TierExamples {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(got) != 3 || got["correct"] != float64(1) || got["time_ms"] != float64(4200) || got["hint_count"] != float64(1) {
		t.Fatalf("unexpected request body: %v", got)
	}
}

func TestClientEvaluateErrors(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		},
		"no score": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`score`))
		},
	}
	for name, h := range handlers {
		ts := httptest.NewServer(h)
		_, err := NewClient(ts.URL, time.Second).Evaluate(context.Background(), Attempt{})
		ts.Close()
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestClientEvaluateIncorrectAttempt(t *testing.T) {
	var got map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"score": 0.1}`))
	}))
	defer ts.Close()

	result, err := NewClient(ts.URL, time.Second).Evaluate(context.Background(), Attempt{TimeMs: 9000, HintCount: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tier != TierNone {
		t.Fatalf("expected tier %d, got %d", TierNone, result.Tier)
	}
	if got["correct"] != float64(0) || got["hint_count"] != float64(3) {
		t.Fatalf("unexpected request body: %v", got)
	}
}
