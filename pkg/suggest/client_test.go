package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "twitter", req.Platform)
		assert.Equal(t, "engagement", req.KPI)

		_, _ = w.Write([]byte(`{
			"trends":["#golang","#buildinpublic"],
			"captions":["Ship it!","New release out now"],
			"strategy":{"cadence":"daily","best_time":"09:00"}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk-test")
	res, err := c.Suggest(context.Background(), Request{Platform: "twitter", KPI: "engagement", Topic: "launch"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#golang", "#buildinpublic"}, res.Trends)
	assert.Len(t, res.Captions, 2)
	assert.JSONEq(t, `{"cadence":"daily","best_time":"09:00"}`, string(res.Strategy))
}

func TestSuggestNon2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Suggest(context.Background(), Request{Platform: "twitter", KPI: "reach", Topic: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuggestBadJSONIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Suggest(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuggestUnconfigured(t *testing.T) {
	c := NewClient("", "")
	_, err := c.Suggest(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
