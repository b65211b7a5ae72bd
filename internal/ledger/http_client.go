package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"auction-house/pkg/logger"
)

// HTTPClient talks to the external balance/ledger service over its REST
// contract: balance lookups are side-effect free, transfers move funds and
// must be treated as fallible.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type balanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) GetBalance(ctx context.Context, user string) (int64, error) {
	url := fmt.Sprintf("%s/accounts/%s/balance", c.baseURL, user)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build balance request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("balance request for %s: %w", user, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance request for %s: %s", user, c.readError(resp))
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}

	return body.Balance, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, from, to string, amount int64) error {
	payload, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	url := fmt.Sprintf("%s/transfers", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transfer %d from %s to %s: %w", amount, from, to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transfer %d from %s to %s: %s", amount, from, to, c.readError(resp))
	}

	return nil
}

func (c *HTTPClient) readError(resp *http.Response) string {
	var body errorResponse
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && json.Unmarshal(data, &body) == nil && body.Error != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
