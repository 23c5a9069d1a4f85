package captcha

import (
	"context"

	"portfolio/config"
	"portfolio/dto"
	"portfolio/model"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Verifier is the upstream siteverify call, injected so the proxy can be
// tested against a fabricated verdict source.
type Verifier interface {
	Verify(ctx context.Context, token string) (model.SiteVerifyResponse, error)
}

func CaptchaController(router *gin.Engine, cfg config.Config, verifier Verifier) {
	router.POST("/api/verify-recaptcha", func(c *gin.Context) {
		VerifyRecaptcha(c, cfg, verifier)
	})
}

func VerifyRecaptcha(c *gin.Context, cfg config.Config, verifier Verifier) {
	var request dto.CaptchaRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Token == "" {
		c.JSON(400, dto.CaptchaResponse{Error: "No reCAPTCHA token provided"})
		return
	}

	// Checked before any upstream call is attempted.
	if !cfg.SecretConfigured() {
		log.Error("RECAPTCHA_SECRET_KEY is not configured")
		c.JSON(500, dto.CaptchaResponse{Error: "Server configuration error"})
		return
	}

	verdict, err := verifier.Verify(c.Request.Context(), request.Token)
	if err != nil {
		log.Errorf("reCAPTCHA verification error: %v", err)
		c.JSON(500, dto.CaptchaResponse{Error: "Verification error"})
		return
	}

	if services.Accepted(verdict) {
		c.JSON(200, dto.CaptchaResponse{
			Success: true,
			Score:   verdict.Score,
			Action:  verdict.Action,
		})
		return
	}

	// A negative verdict is a normal outcome, not a server error. A
	// score the upstream never sent stays absent on the wire.
	c.JSON(400, dto.CaptchaResponse{
		Error:      "reCAPTCHA verification failed",
		Score:      verdict.Score,
		ErrorCodes: verdict.ErrorCodes,
	})
}
