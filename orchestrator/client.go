package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio/dto"
)

// ProxyVerifier talks to the server's verify-recaptcha endpoint over
// HTTP and satisfies Verifier.
type ProxyVerifier struct {
	Endpoint string
	Client   *http.Client
}

func NewProxyVerifier(endpoint string) *ProxyVerifier {
	return &ProxyVerifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify posts the token and decodes the proxy's result. A rejected
// result comes back with a 4xx status and is still a decoded result,
// not an error; only transport and decode failures are errors.
func (p *ProxyVerifier) Verify(ctx context.Context, token string) (dto.CaptchaResponse, error) {
	body, err := json.Marshal(dto.CaptchaRequest{Token: token})
	if err != nil {
		return dto.CaptchaResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return dto.CaptchaResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return dto.CaptchaResponse{}, err
	}
	defer resp.Body.Close()

	var result dto.CaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return dto.CaptchaResponse{}, fmt.Errorf("decode proxy response: %w", err)
	}
	return result, nil
}
