package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portfolio/model"
)

// ScoreThreshold is the minimum confidence score a verdict must carry to
// be accepted. Fixed policy, not configurable per call.
const ScoreThreshold = 0.5

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier performs the single upstream call to the reCAPTCHA
// siteverify endpoint. One attempt per invocation, no retry, no caching
// (tokens are single-use upstream).
type RecaptchaVerifier struct {
	Endpoint string
	Secret   string
	Client   *http.Client
}

func NewRecaptchaVerifier(secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{
		Endpoint: siteVerifyURL,
		Secret:   secret,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify sends the secret and token form-encoded and decodes the raw
// verdict. A transport or decode failure is an error; a negative verdict
// is not.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (model.SiteVerifyResponse, error) {
	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return model.SiteVerifyResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return model.SiteVerifyResponse{}, err
	}
	defer resp.Body.Close()

	var verdict model.SiteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return model.SiteVerifyResponse{}, fmt.Errorf("decode siteverify response: %w", err)
	}
	return verdict, nil
}

// Accepted applies the threshold policy to a raw verdict. A verdict
// without a score cannot clear the threshold.
func Accepted(verdict model.SiteVerifyResponse) bool {
	return verdict.Success && verdict.Score != nil && *verdict.Score >= ScoreThreshold
}
