package model

// ContactMessage holds the four fields of a contact form submission.
// All fields are required and validated for presence only.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// IsComplete reports whether every field is non-empty.
func (m ContactMessage) IsComplete() bool {
	return m.Name != "" && m.Email != "" && m.Subject != "" && m.Body != ""
}
