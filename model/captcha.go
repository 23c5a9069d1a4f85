package model

// SiteVerifyResponse is the raw verdict returned by the upstream
// reCAPTCHA siteverify endpoint, before any threshold policy is applied.
// Score is absent on verdicts the service rejects outright, such as
// timeout-or-duplicate.
type SiteVerifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}
