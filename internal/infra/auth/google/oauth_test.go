package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"audiobrew/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(tokenURI string) *config.Config {
	return &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			RedirectURI:  "http://localhost:8080/gmail/callback",
			TokenURI:     tokenURI,
		},
	}
}

func TestOAuthProvider_AuthCodeURL(t *testing.T) {
	provider := NewOAuthProvider(newTestConfig(""))

	raw := provider.AuthCodeURL("signed-state")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/gmail/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "signed-state", query.Get("state"))
	assert.Equal(t, "offline", query.Get("access_type"))
	assert.Equal(t, "consent", query.Get("prompt"))
	assert.Equal(t, "true", query.Get("include_granted_scopes"))
	assert.Contains(t, query.Get("scope"), "https://www.googleapis.com/auth/gmail.readonly")
	assert.Contains(t, query.Get("scope"), "openid")
}

func newFakeGoogle(t *testing.T, tokenStatus int) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))

		if tokenStatus != http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad Request"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "ya29.access",
			"refresh_token": "1//refresh",
			"token_type":    "Bearer",
			"expires_in":    3599,
		})
	})
	mux.HandleFunc("/oauth2/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1234","email":"reader@example.com","verified_email":true}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestOAuthProvider_Exchange(t *testing.T) {
	server := newFakeGoogle(t, http.StatusOK)
	provider := newOAuthProvider(newTestConfig(server.URL+"/token"), server.Client(), server.URL+"/")

	bundle, err := provider.Exchange(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "ya29.access", bundle.Token)
	assert.Equal(t, "1//refresh", bundle.RefreshToken)
	assert.Equal(t, server.URL+"/token", bundle.TokenURI)
	assert.Equal(t, "test_client_id", bundle.ClientID)
	assert.Equal(t, "test_secret", bundle.ClientSecret)
	assert.Equal(t, config.DefaultGmailScopes, bundle.Scopes)
	assert.Equal(t, "reader@example.com", bundle.Email)
	assert.True(t, bundle.Validate())
}

func TestOAuthProvider_Exchange_TokenEndpointFails(t *testing.T) {
	server := newFakeGoogle(t, http.StatusBadRequest)
	provider := newOAuthProvider(newTestConfig(server.URL+"/token"), server.Client(), server.URL+"/")

	bundle, err := provider.Exchange(context.Background(), "auth-code")

	assert.Error(t, err)
	assert.Nil(t, bundle)
	assert.Contains(t, err.Error(), "failed to exchange authorization code")
}
