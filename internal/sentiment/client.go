package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Rate limiting: stay well under the inference API free-tier budget
	rateLimit = 5
	rateBurst = 10

	// Retry configuration
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 8 * time.Second
)

// Prediction is one label/confidence pair returned by the model.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client calls the sentiment inference endpoint with rate limiting and retry logic.
type Client struct {
	baseURL     string
	apiToken    string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new sentiment analysis client
func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		apiToken:    apiToken,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Analyze runs the feedback text through the model and returns a 1-5
// sentiment score: the leading digit of the highest-confidence label
// ("4 stars" -> 4).
func (c *Client) Analyze(ctx context.Context, text string) (int, error) {
	predictions, err := c.doRequest(ctx, text)
	if err != nil {
		return 0, fmt.Errorf("error while analyzing the feedback: %w", err)
	}

	if len(predictions) == 0 {
		return 0, fmt.Errorf("error while analyzing the feedback: model returned no predictions")
	}

	// Extract the sentiment with the highest score.
	best := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	score, err := parseScore(best.Label)
	if err != nil {
		return 0, fmt.Errorf("error while analyzing the feedback: %w", err)
	}
	return score, nil
}

// doRequest performs the inference call with rate limiting and retry logic
func (c *Client) doRequest(ctx context.Context, text string) ([]Prediction, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		// Rate limit
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiToken)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
		} else {
			predictions, retryable, reqErr := c.handleResponse(resp)
			if reqErr == nil {
				return predictions, nil
			}
			lastErr = reqErr
			if !retryable {
				return nil, lastErr
			}
		}

		// Back off before the next attempt
		if attempt < maxRetries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
			if delay > maxDelay {
				delay = maxDelay
			}
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// handleResponse decodes the model output. The inference API wraps the
// predictions for a single input in an extra array level.
func (c *Client) handleResponse(resp *http.Response) ([]Prediction, bool, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		// 429 and 5xx are transient (model loading, rate limits); 4xx are not
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retryable, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	var result [][]Prediction
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result) == 0 {
		return nil, false, fmt.Errorf("empty response body")
	}
	return result[0], false, nil
}

// parseScore extracts the star rating from a label like "4 stars".
func parseScore(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("empty sentiment label")
	}
	score, err := strconv.Atoi(label[:1])
	if err != nil || score < 1 || score > 5 {
		return 0, fmt.Errorf("unexpected sentiment label %q", label)
	}
	return score, nil
}
