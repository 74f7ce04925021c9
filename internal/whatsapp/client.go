package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/healthtrack-labs/healthtrack/constants"
	"github.com/healthtrack-labs/healthtrack/internal/common"
)

// Client sends messages through the WhatsApp Cloud API. Every send is
// bounded by a fixed timeout that cancels the in-flight request and
// surfaces a distinguishable timeout error.
type Client struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	sendTimeout   time.Duration
	httpClient    *http.Client
	logger        *slog.Logger
}

// ErrSendTimeout marks an outbound message cancelled by the send timeout.
var ErrSendTimeout = errors.New("whatsapp send timed out")

func NewClient(cfg common.WhatsAppConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
		sendTimeout:   timeout,
		httpClient:    &http.Client{},
		logger:        logger,
	}
}

// SendText sends a plain text message.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]any{"body": body},
	}
	return c.send(ctx, payload)
}

// SendReminder sends an interactive yes/no button prompt for one
// medicine and timing slot. Button ids carry the encoded callback
// identity the reply handler parses back out.
func (c *Client) SendReminder(ctx context.Context, to, medicine string, timing constants.TimeOfDay, yesID, noID string) error {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]any{
			"type": "button",
			"body": map[string]any{
				"text": fmt.Sprintf("Time for your %s dose of %s. Did you take it?", timing, medicine),
			},
			"action": map[string]any{
				"buttons": []map[string]any{
					{
						"type":  "reply",
						"reply": map[string]any{"id": yesID, "title": "Yes, taken"},
					},
					{
						"type":  "reply",
						"reply": map[string]any{"id": noID, "title": "Not yet"},
					},
				},
			},
		},
	}
	return c.send(ctx, payload)
}

func (c *Client) send(ctx context.Context, payload map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	start := time.Now()
	bs, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			c.logger.Error("whatsapp.send.timeout", "timeout", c.sendTimeout)
			return fmt.Errorf("after %s: %w", c.sendTimeout, ErrSendTimeout)
		}
		c.logger.Error("whatsapp.send.error", "error", err)
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("whatsapp.send.body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Info("whatsapp.send.response",
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return common.NewUpstreamError("messaging service", resp.StatusCode, string(raw))
	}
	return nil
}

// DownloadMedia fetches an inbound attachment: first the media record
// for its short-lived URL, then the bytes themselves.
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	meta, err := c.get(ctx, fmt.Sprintf("%s/%s", c.baseURL, mediaID))
	if err != nil {
		return nil, "", err
	}
	var record struct {
		URL      string `json:"url"`
		MimeType string `json:"mime_type"`
	}
	if err := json.Unmarshal(meta, &record); err != nil {
		return nil, "", fmt.Errorf("decode media record: %w", err)
	}
	if record.URL == "" {
		return nil, "", fmt.Errorf("media %s has no download url: %w", mediaID, common.ErrValidation)
	}

	data, err := c.get(ctx, record.URL)
	if err != nil {
		return nil, "", err
	}
	c.logger.Info("whatsapp.media.downloaded", "media_id", mediaID, "bytes", len(data), "mime_type", record.MimeType)
	return data, record.MimeType, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("whatsapp.get.body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, common.NewUpstreamError("messaging service", resp.StatusCode, string(raw))
	}
	return raw, nil
}
