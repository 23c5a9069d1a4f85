package connection

import (
	"portfolio/config"
	"portfolio/controller/captcha"
	"portfolio/controller/contact"
	"portfolio/controller/portfolio"
	"portfolio/middleware"
	"portfolio/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func StartServer() {
	cfg := config.Load()

	if !cfg.SecretConfigured() {
		log.Warn("RECAPTCHA_SECRET_KEY is not set, token verification will be rejected")
	}
	if !cfg.CaptchaEnabled() {
		log.Warn("RECAPTCHA_SITE_KEY is not set, contact submissions run without verification")
	}

	verifier := services.NewRecaptchaVerifier(cfg.RecaptchaSecretKey)
	sender := services.NewEmailJSClient(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	captcha.CaptchaController(router, cfg, verifier)
	contact.ContactController(router, cfg, verifier, sender)
	portfolio.PortfolioController(router)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
