package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/pkg/instagram"
)

func TestListAccountsEnumerationOrder(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodGet, "/api/accounts", env.token(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &accounts))
	require.Len(t, accounts, 4)

	var platforms []string
	for _, a := range accounts {
		platforms = append(platforms, a["platform"].(string))
	}
	assert.Equal(t, []string{"twitter", "instagram", "facebook", "linkedin"}, platforms)
	assert.Equal(t, "@demouser", accounts[0]["handle"])
	assert.Equal(t, false, accounts[2]["connected"])
}

func TestConnectDisconnectToggle(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t)

	w, resp := env.do(t, http.MethodPost, "/api/accounts/facebook/connect", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var a map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &a))
	assert.Equal(t, true, a["connected"])

	w, resp = env.do(t, http.MethodPost, "/api/accounts/facebook/disconnect", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &a))
	assert.Equal(t, false, a["connected"])
}

func TestConnectUnknownPlatform(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/api/accounts/myspace/connect", env.token(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown platform", resp.Message)
}

func TestConnectInstagramOAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access_token":
			_, _ = w.Write([]byte(`{"access_token":"tok","user_id":987}`))
		case "/me":
			_, _ = w.Write([]byte(`{"id":"987","username":"demo_ig","media_count":5}`))
		case "/me/media":
			_, _ = w.Write([]byte(`{"data":[{"like_count":3},{"like_count":4}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	env := newTestEnv(t)
	ig := instagram.NewClient("cid", "secret")
	ig.OAuthBaseURL = srv.URL
	ig.GraphBaseURL = srv.URL
	env.accountSvc.Instagram = ig

	w, resp := env.do(t, http.MethodPost, "/api/accounts/instagram/connect", env.token(t), gin.H{
		"code":         "authcode",
		"redirect_uri": "https://app.example.com/callback",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var a map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &a))
	assert.Equal(t, "@demo_ig", a["handle"])
	assert.Equal(t, true, a["connected"])
	stats := a["stats"].(map[string]any)
	assert.EqualValues(t, 5, stats["media_count"])
	assert.EqualValues(t, 7, stats["total_likes"])
}

func TestConnectInstagramUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	env := newTestEnv(t)
	ig := instagram.NewClient("cid", "secret")
	ig.OAuthBaseURL = srv.URL
	ig.GraphBaseURL = srv.URL
	env.accountSvc.Instagram = ig

	w, resp := env.do(t, http.MethodPost, "/api/accounts/instagram/connect", env.token(t), gin.H{
		"code":         "authcode",
		"redirect_uri": "https://app.example.com/callback",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "failed to connect Instagram account", resp.Message)
}

func TestConnectInstagramBadPayload(t *testing.T) {
	env := newTestEnv(t)
	w, _ := env.do(t, http.MethodPost, "/api/accounts/instagram/connect", env.token(t), gin.H{
		"code": "authcode",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
