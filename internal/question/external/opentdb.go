package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"time"
)

// Open Trivia DB response codes other than success.
var (
	ErrNoResults    = errors.New("opentdb: not enough questions for query")
	ErrInvalidQuery = errors.New("opentdb: invalid parameter")
	ErrRateLimited  = errors.New("opentdb: rate limited")
)

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// OpenTDBQuestion is one result as returned by api.php, with HTML entities
// already decoded.
type OpenTDBQuestion struct {
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	CorrectAnswer   string   `json:"correct_answer"`
	IncorrectAnswer []string `json:"incorrect_answers"`
}

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []OpenTDBQuestion `json:"results"`
}

// FetchOptions narrows an api.php query. Zero values are omitted.
type FetchOptions struct {
	Amount     int
	Category   int
	Difficulty string
	Type       string
}

// Fetch retrieves a batch of questions.
func (c *OpenTDBClient) Fetch(ctx context.Context, opts FetchOptions) ([]OpenTDBQuestion, error) {
	values := url.Values{}
	values.Set("amount", fmt.Sprint(opts.Amount))
	if opts.Category > 0 {
		values.Set("category", fmt.Sprint(opts.Category))
	}
	if opts.Difficulty != "" {
		values.Set("difficulty", opts.Difficulty)
	}
	if opts.Type != "" {
		values.Set("type", opts.Type)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}
	switch payload.ResponseCode {
	case 0:
	case 1:
		return nil, ErrNoResults
	case 2:
		return nil, ErrInvalidQuery
	case 5:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("opentdb response code %d", payload.ResponseCode)
	}

	for i := range payload.Results {
		unescape(&payload.Results[i])
	}
	return payload.Results, nil
}

func unescape(q *OpenTDBQuestion) {
	q.Category = html.UnescapeString(q.Category)
	q.Question = html.UnescapeString(q.Question)
	q.CorrectAnswer = html.UnescapeString(q.CorrectAnswer)
	for i, a := range q.IncorrectAnswer {
		q.IncorrectAnswer[i] = html.UnescapeString(a)
	}
}
