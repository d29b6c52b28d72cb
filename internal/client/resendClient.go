package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shop-backoffice/internal/config"
)

type MailClient interface {
	Send(ctx context.Context, to, subject, html string) error
}

type resendClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	storeName  string
}

func NewResendClient(emailCfg *config.Email) MailClient {
	return &resendClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   "https://api.resend.com",
		apiKey:    emailCfg.ResendAPIKey,
		from:      emailCfg.FromAddress,
		storeName: emailCfg.StoreName,
	}
}

func (c *resendClientImpl) Send(ctx context.Context, to, subject, html string) error {
	if c.apiKey == "" {
		return fmt.Errorf("email not configured")
	}

	payload := map[string]interface{}{
		"from":    fmt.Sprintf("%s <%s>", c.storeName, c.from),
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var res struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&res)
		return fmt.Errorf("resend api status %d: %s", resp.StatusCode, res.Message)
	}

	return nil
}
