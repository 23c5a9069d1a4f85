package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"portfolio/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *EmailJSClient {
	c := NewEmailJSClient("svc_1", "tpl_1", "pub_1")
	c.Endpoint = endpoint
	return c
}

func TestSendStructuredParams(t *testing.T) {
	var got emailJSPayload
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	msg := model.ContactMessage{Name: "A", Email: "a@x.com", Subject: "Hi", Body: "Hello"}
	err := newTestClient(srv.URL).Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1.0/email/send", path)
	assert.Equal(t, "svc_1", got.ServiceID)
	assert.Equal(t, "tpl_1", got.TemplateID)
	assert.Equal(t, "pub_1", got.UserID)
	assert.Equal(t, map[string]string{
		"name": "A", "email": "a@x.com", "subject": "Hi", "body": "Hello",
	}, got.TemplateParams)
}

func TestSendFormIncludesCredentials(t *testing.T) {
	var got url.Values
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	form := url.Values{}
	form.Set("name", "A")
	form.Set("email", "a@x.com")
	err := newTestClient(srv.URL).SendForm(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, "/api/v1.0/email/send-form", path)
	assert.Equal(t, "svc_1", got.Get("service_id"))
	assert.Equal(t, "tpl_1", got.Get("template_id"))
	assert.Equal(t, "pub_1", got.Get("user_id"))
	assert.Equal(t, "A", got.Get("name"))

	// The caller's form stays clean of service credentials.
	assert.Empty(t, form.Get("service_id"))
	assert.Empty(t, form.Get("template_id"))
	assert.Empty(t, form.Get("user_id"))
}

func TestSendNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The template ID not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Send(context.Background(), model.ContactMessage{Name: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
