//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// doJSON sends payload (if any) as JSON and decodes the JSON response body.
func doJSON(t *testing.T, method, url string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response from %s %s: %v", method, url, err)
	}
	return resp, out
}

// createQuestion stores a throwaway question and returns its id.
func createQuestion(t *testing.T, baseURL string, category int) int {
	t.Helper()

	resp, out := doJSON(t, http.MethodPost, fmt.Sprintf("%s/questions", baseURL), map[string]interface{}{
		"question":   "Integration question: what is 2 + 2?",
		"answer":     "4",
		"category":   category,
		"difficulty": 1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create question: unexpected status %d: %v", resp.StatusCode, out)
	}
	id, ok := out["created"].(float64)
	if !ok {
		t.Fatalf("create question: missing created id in %v", out)
	}
	return int(id)
}
