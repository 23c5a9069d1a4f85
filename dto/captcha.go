package dto

type CaptchaRequest struct {
	Token string `json:"token"`
}

// CaptchaResponse is the proxy's own output, distinct from the raw
// upstream verdict. Success is true only when the verdict passed and the
// score cleared the threshold.
type CaptchaResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	Error      string   `json:"error,omitempty"`
	ErrorCodes []string `json:"errorCodes,omitempty"`
}
