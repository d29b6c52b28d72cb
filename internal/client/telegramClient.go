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

type TelegramClient interface {
	SendMessage(ctx context.Context, text string) error
}

type telegramClientImpl struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
	chatID     string
}

func NewTelegramClient(telegramCfg *config.Telegram) TelegramClient {
	return &telegramClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:  "https://api.telegram.org",
		botToken: telegramCfg.BotToken,
		chatID:   telegramCfg.ChatID,
	}
}

func (c *telegramClientImpl) SendMessage(ctx context.Context, text string) error {
	if c.botToken == "" || c.chatID == "" {
		return fmt.Errorf("telegram not configured")
	}

	payload := map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var res struct {
			Description string `json:"description"`
		}
		json.NewDecoder(resp.Body).Decode(&res)
		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, res.Description)
	}

	return nil
}
