package dto

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	// Token is optional; when the site has no captcha configured the
	// relay skips verification entirely.
	Token string `json:"token"`
}
