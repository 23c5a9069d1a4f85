package contact

import (
	"context"

	"portfolio/config"
	"portfolio/dto"
	"portfolio/model"
	"portfolio/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Verifier interface {
	Verify(ctx context.Context, token string) (model.SiteVerifyResponse, error)
}

type Sender interface {
	Send(ctx context.Context, msg model.ContactMessage) error
}

// ContactController registers the server-side relay: the same
// verify-then-deliver sequence the browser client runs, for callers that
// talk to the API directly.
func ContactController(router *gin.Engine, cfg config.Config, verifier Verifier, sender Sender) {
	router.POST("/api/contact", func(c *gin.Context) {
		SubmitContact(c, cfg, verifier, sender)
	})
}

func SubmitContact(c *gin.Context, cfg config.Config, verifier Verifier, sender Sender) {
	var request dto.ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if cfg.CaptchaEnabled() {
		if request.Token == "" {
			c.JSON(400, gin.H{"error": "No reCAPTCHA token provided"})
			return
		}
		if !cfg.SecretConfigured() {
			log.Error("RECAPTCHA_SECRET_KEY is not configured")
			c.JSON(500, gin.H{"error": "Server configuration error"})
			return
		}
		verdict, err := verifier.Verify(c.Request.Context(), request.Token)
		if err != nil {
			log.Errorf("reCAPTCHA verification error: %v", err)
			c.JSON(500, gin.H{"error": "Verification error"})
			return
		}
		if !services.Accepted(verdict) {
			fields := log.Fields{"errorCodes": verdict.ErrorCodes}
			if verdict.Score != nil {
				fields["score"] = *verdict.Score
			}
			log.WithFields(fields).Warn("contact submission rejected by reCAPTCHA")
			c.JSON(400, gin.H{"error": "reCAPTCHA verification failed"})
			return
		}
	}

	msg := model.ContactMessage{
		Name:    request.Name,
		Email:   request.Email,
		Subject: request.Subject,
		Body:    request.Body,
	}
	if err := sender.Send(c.Request.Context(), msg); err != nil {
		log.Errorf("contact delivery failed: %v", err)
		c.JSON(502, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(200, gin.H{"message": "Message sent"})
}
