package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/config"
	"portfolio/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyVerifierAccepted(t *testing.T) {
	var gotToken string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.CaptchaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotToken = req.Token
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"score":0.9,"action":"contact_form"}`))
	}))
	defer proxy.Close()

	result, err := NewProxyVerifier(proxy.URL).Verify(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "tok123", gotToken)
	assert.True(t, result.Success)
	require.NotNil(t, result.Score)
	assert.Equal(t, 0.9, *result.Score)
}

func TestProxyVerifierRejectedIsNotAnError(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"reCAPTCHA verification failed","score":0.2}`))
	}))
	defer proxy.Close()

	result, err := NewProxyVerifier(proxy.URL).Verify(context.Background(), "tok123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "reCAPTCHA verification failed", result.Error)
}

func TestProxyVerifierUnreachable(t *testing.T) {
	_, err := NewProxyVerifier("http://127.0.0.1:1").Verify(context.Background(), "tok123")
	assert.Error(t, err)
}

// Full sequence against an HTTP proxy double: mocked token tok123,
// proxy answering success/0.9, delivery succeeding.
func TestSubmitEndToEnd(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"score":0.9,"action":"contact_form"}`))
	}))
	defer proxy.Close()

	tokens := &fakeTokens{token: "tok123"}
	deliverer := &fakeDeliverer{}
	center := NewCenter()
	cfg := config.Config{RecaptchaSiteKey: "site-key", RecaptchaSecretKey: "s"}
	s := NewSubmitter(cfg, tokens, NewProxyVerifier(proxy.URL), deliverer, center)

	form := &Form{Name: "A", Email: "a@x.com", Subject: "Hi", Body: "Hello"}
	require.NoError(t, s.Submit(context.Background(), form))

	assert.Equal(t, StateSucceeded, s.State())
	assert.Equal(t, 1, deliverer.sendCalls)
	assert.Equal(t, &Form{}, form)

	n, visible := center.Current()
	require.True(t, visible)
	assert.Equal(t, "Thank you for your message! I'll get back to you soon.", n.Message)
	assert.Equal(t, KindSuccess, n.Kind)
}
