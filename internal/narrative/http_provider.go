package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider calls an external narrative-generation service over HTTP.
type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type summarizeRequest struct {
	StudentName string        `json:"studentName"`
	Items       []SummaryItem `json:"items"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

func (p *HTTPProvider) Summarize(ctx context.Context, studentName string, items []SummaryItem) (string, error) {
	body, err := json.Marshal(summarizeRequest{StudentName: studentName, Items: items})
	if err != nil {
		return "", fmt.Errorf("marshal narrative request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build narrative request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call narrative service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrative service returned status %d", res.StatusCode)
	}

	var parsed summarizeResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode narrative response: %w", err)
	}
	if parsed.Summary == "" {
		return "", fmt.Errorf("narrative service returned empty summary")
	}
	return parsed.Summary, nil
}
