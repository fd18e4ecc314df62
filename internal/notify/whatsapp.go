package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bekmanvision/uniqer/internal/config"
	"github.com/bekmanvision/uniqer/internal/lib/phone"
)

const whatsAppAPI = "https://graph.facebook.com/v18.0"

// WhatsAppClient sends template messages through the WhatsApp Cloud API.
type WhatsAppClient struct {
	cfg     config.WhatsApp
	baseURL string
	client  *http.Client
}

func NewWhatsApp(cfg config.WhatsApp) *WhatsAppClient {
	return &WhatsAppClient{
		cfg:     cfg,
		baseURL: whatsAppAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *WhatsAppClient) Configured() bool {
	return c.cfg.Token != "" && c.cfg.PhoneID != ""
}

func (c *WhatsAppClient) SendTemplate(to, template string, params []string) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp is not configured")
	}

	type textParam struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone.Normalize(to),
		"type":              "template",
		"template": map[string]any{
			"name":     template,
			"language": map[string]string{"code": "ru"},
		},
	}

	if len(params) > 0 {
		textParams := make([]textParam, 0, len(params))
		for _, p := range params {
			textParams = append(textParams, textParam{Type: "text", Text: p})
		}
		payload["template"].(map[string]any)["components"] = []map[string]any{
			{"type": "body", "parameters": textParams},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.cfg.PhoneID)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}

	return nil
}
