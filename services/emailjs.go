package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/model"
)

const emailJSBaseURL = "https://api.emailjs.com"

// EmailJSClient delivers contact messages through the EmailJS REST API.
// Send uses the structured template-params endpoint; SendForm posts the
// raw form fields for sites running without a captcha site key.
type EmailJSClient struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Client     *http.Client
}

func NewEmailJSClient(serviceID, templateID, publicKey string) *EmailJSClient {
	return &EmailJSClient{
		Endpoint:   emailJSBaseURL,
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send dispatches one message with four named template parameters. The
// anti-abuse token is never part of the payload.
func (c *EmailJSClient) Send(ctx context.Context, msg model.ContactMessage) error {
	payload := emailJSPayload{
		ServiceID:  c.ServiceID,
		TemplateID: c.TemplateID,
		UserID:     c.PublicKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"subject": msg.Subject,
			"body":    msg.Body,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// SendForm dispatches one message in whole-form mode, mirroring the
// fallback path used when no site key is configured. The caller's form
// is copied before the service credentials are added; on failure it is
// kept around for retry and must not end up carrying them.
func (c *EmailJSClient) SendForm(ctx context.Context, form url.Values) error {
	payload := url.Values{}
	for key, values := range form {
		payload[key] = append([]string(nil), values...)
	}
	payload.Set("service_id", c.ServiceID)
	payload.Set("template_id", c.TemplateID)
	payload.Set("user_id", c.PublicKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/api/v1.0/email/send-form", strings.NewReader(payload.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *EmailJSClient) do(req *http.Request) error {
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
