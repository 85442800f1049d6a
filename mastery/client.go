package mastery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "http://localhost:5005"

type Attempt struct {
	Correct   bool
	TimeMs    float64
	HintCount float64
}

// inferRequest is the /infer body; correct is sent as 1 or 0.
type inferRequest struct {
	Correct   float64 `json:"correct"`
	TimeMs    float64 `json:"time_ms"`
	HintCount float64 `json:"hint_count"`
}

type Result struct {
	Score float64 `json:"score"`
	Tier  int     `json:"tier"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Evaluate scores one attempt and maps the score to a tier.
func (c *Client) Evaluate(ctx context.Context, attempt Attempt) (Result, error) {
	body := inferRequest{TimeMs: attempt.TimeMs, HintCount: attempt.HintCount}
	if attempt.Correct {
		body.Correct = 1
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/infer", bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("infer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Result{}, fmt.Errorf("infer returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		Score *float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode infer response: %w", err)
	}
	if out.Score == nil {
		return Result{}, fmt.Errorf("infer response has no score")
	}
	return Result{Score: *out.Score, Tier: Tier(*out.Score)}, nil
}
