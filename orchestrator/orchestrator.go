// Package orchestrator drives a contact form submission end to end:
// anti-abuse token acquisition, verification through the server proxy,
// then message delivery. It mirrors what the browser client does, with
// every external capability injected so the flow is testable offline.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"portfolio/config"
	"portfolio/dto"
	"portfolio/model"

	log "github.com/sirupsen/logrus"
)

// ActionContactForm is the action label every contact-form token is
// scoped to.
const ActionContactForm = "contact_form"

const (
	successMessage = "Thank you for your message! I'll get back to you soon."
	failureMessage = "Sorry, there was an error sending your message. Please try again or contact me directly via email."
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission has not concluded.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrIncompleteForm is returned before the sequence starts when a
	// required field is empty.
	ErrIncompleteForm = errors.New("all contact form fields are required")

	// ErrVerificationRejected marks a negative verdict from the proxy.
	ErrVerificationRejected = errors.New("verification rejected")

	// ErrDeliveryFailed marks a failure in the delivery service call.
	ErrDeliveryFailed = errors.New("message delivery failed")
)

// TokenSource acquires a fresh anti-abuse token scoped to an action
// label. The production source is the embedding environment's challenge
// script; it suspends until the script resolves.
type TokenSource interface {
	Token(ctx context.Context, action string) (string, error)
}

// Verifier checks a token against the verification proxy and returns
// the proxy's result. A non-nil error means the proxy itself could not
// be reached, distinct from a rejected result.
type Verifier interface {
	Verify(ctx context.Context, token string) (dto.CaptchaResponse, error)
}

// Deliverer hands the message to the external delivery service, either
// with structured parameters or in whole-form mode.
type Deliverer interface {
	Send(ctx context.Context, msg model.ContactMessage) error
	SendForm(ctx context.Context, form url.Values) error
}

// Form is the mutable contact form. Successful submission clears it;
// failure leaves it populated so nothing has to be retyped.
type Form struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (f *Form) Message() model.ContactMessage {
	return model.ContactMessage{Name: f.Name, Email: f.Email, Subject: f.Subject, Body: f.Body}
}

func (f *Form) Values() url.Values {
	v := url.Values{}
	v.Set("name", f.Name)
	v.Set("email", f.Email)
	v.Set("subject", f.Subject)
	v.Set("body", f.Body)
	return v
}

func (f *Form) Reset() {
	*f = Form{}
}

// Submitter runs the submission sequence. One submission at a time;
// a second Submit while one is in flight returns ErrSubmissionInFlight.
type Submitter struct {
	cfg           config.Config
	tokens        TokenSource
	verifier      Verifier
	deliverer     Deliverer
	notifications *Center

	mu    sync.Mutex
	state State
}

func NewSubmitter(cfg config.Config, tokens TokenSource, verifier Verifier, deliverer Deliverer, notifications *Center) *Submitter {
	return &Submitter{
		cfg:           cfg,
		tokens:        tokens,
		verifier:      verifier,
		deliverer:     deliverer,
		notifications: notifications,
		state:         StateIdle,
	}
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs one attempt through the full sequence. No step retries;
// the first failure aborts, shows one failure notification and keeps
// the form populated. Success clears the form.
func (s *Submitter) Submit(ctx context.Context, form *Form) error {
	if !form.Message().IsComplete() {
		return ErrIncompleteForm
	}

	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	err := s.run(ctx, form)

	// The busy state concludes on every path.
	s.mu.Lock()
	if err != nil {
		s.state = StateFailed
	} else {
		s.state = StateSucceeded
	}
	s.mu.Unlock()

	if err != nil {
		// Log the distinguishing detail; the user only sees the
		// generic retry suggestion.
		log.Errorf("contact form submission failed: %v", err)
		s.notifications.Show(failureMessage, KindError)
		return err
	}

	form.Reset()
	s.notifications.Show(successMessage, KindSuccess)
	return nil
}

func (s *Submitter) run(ctx context.Context, form *Form) error {
	if !s.cfg.CaptchaEnabled() {
		// No site key configured: whole-form delivery, no token, no
		// proxy call.
		if err := s.deliverer.SendForm(ctx, form.Values()); err != nil {
			return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		}
		return nil
	}

	token, err := s.tokens.Token(ctx, ActionContactForm)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}

	result, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrVerificationRejected, result.Error)
	}

	// The token never travels to the delivery service.
	if err := s.deliverer.Send(ctx, form.Message()); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
