package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Placeholder sentinels. A key left at its placeholder disables the
// corresponding feature path instead of producing broken requests.
const (
	PlaceholderSiteKey    = "YOUR_RECAPTCHA_SITE_KEY"
	PlaceholderServiceID  = "YOUR_SERVICE_ID"
	PlaceholderTemplateID = "YOUR_TEMPLATE_ID"
	PlaceholderPublicKey  = "YOUR_PUBLIC_KEY"
)

// Config carries every external key the server and the submission client
// need. It is built once at startup and injected; nothing reads the
// environment at call time.
type Config struct {
	// Server-side only, never sent to a browser.
	RecaptchaSecretKey string

	// Public keys, safe to expose.
	RecaptchaSiteKey  string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	Port string
}

// Load reads a .env file when present, then the process environment.
// Missing public keys fall back to their placeholder sentinel.
func Load() Config {
	godotenv.Load()

	return Config{
		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
		RecaptchaSiteKey:   getEnv("RECAPTCHA_SITE_KEY", PlaceholderSiteKey),
		EmailJSServiceID:   getEnv("EMAILJS_SERVICE_ID", PlaceholderServiceID),
		EmailJSTemplateID:  getEnv("EMAILJS_TEMPLATE_ID", PlaceholderTemplateID),
		EmailJSPublicKey:   getEnv("EMAILJS_PUBLIC_KEY", PlaceholderPublicKey),
		Port:               getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// CaptchaEnabled reports whether the anti-abuse path should run at all.
func (c Config) CaptchaEnabled() bool {
	return c.RecaptchaSiteKey != "" && c.RecaptchaSiteKey != PlaceholderSiteKey
}

// SecretConfigured reports whether the verification proxy can reach the
// upstream service. Checked before any upstream call is attempted.
func (c Config) SecretConfigured() bool {
	return c.RecaptchaSecretKey != ""
}
