// internals/features/notifications/whatsapp/service/whatsapp_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"centralcelular_backend/internals/configs"
)

// Client talks to the external WhatsApp gateway. One gateway serves all
// accounts; each account authenticates with its own session token.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: strings.TrimRight(configs.WhatsAppGatewayURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendTextRequest struct {
	Numero   string `json:"numero"`
	Mensagem string `json:"mensagem"`
}

type gatewayStatusResponse struct {
	Status string `json:"status"`
}

// SendText delivers a plain text message. Numbers are passed through as
// stored; the gateway handles country-code normalization.
func (cl *Client) SendText(ctx context.Context, sessionToken, numero, mensagem string) error {
	body, err := json.Marshal(sendTextRequest{Numero: numero, Mensagem: mensagem})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cl.BaseURL+"/api/message/text", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp gateway unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned %d", resp.StatusCode)
	}
	return nil
}

// SessionStatus asks the gateway whether the account session is paired.
func (cl *Client) SessionStatus(ctx context.Context, sessionToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		cl.BaseURL+"/api/session/status", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken)

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("whatsapp gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("whatsapp gateway returned %d", resp.StatusCode)
	}

	var out gatewayStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Status, nil
}
