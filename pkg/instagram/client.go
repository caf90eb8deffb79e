// Package instagram wraps the basic-display OAuth exchange and the two
// profile reads the connect flow needs. The rest of the app only sees
// the final Profile tuple, never the protocol.
package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultOAuthBaseURL = "https://api.instagram.com"
	defaultGraphBaseURL = "https://graph.instagram.com"
)

type Client struct {
	ClientID     string
	ClientSecret string

	// OAuthBaseURL and GraphBaseURL exist for tests; zero values hit the
	// real endpoints.
	OAuthBaseURL string
	GraphBaseURL string

	HTTP *http.Client
}

// Profile is what the account registry stores after a connect: the
// handle plus the media and like totals. Followers is a placeholder,
// basic display does not expose it.
type Profile struct {
	UserID     string
	Username   string
	MediaCount int
	TotalLikes int
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) oauthBase() string {
	if c.OAuthBaseURL != "" {
		return c.OAuthBaseURL
	}
	return defaultOAuthBaseURL
}

func (c *Client) graphBase() string {
	if c.GraphBaseURL != "" {
		return c.GraphBaseURL
	}
	return defaultGraphBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (accessToken, userID string, err error) {
	form := url.Values{
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURI},
		"code":          {code},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthBase()+"/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("instagram token exchange: status %d", res.StatusCode)
	}

	var body struct {
		AccessToken string          `json:"access_token"`
		UserID      json.RawMessage `json:"user_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", "", err
	}
	return body.AccessToken, strings.Trim(string(body.UserID), `"`), nil
}

// FetchProfile reads the username and media count for the token owner.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	u := fmt.Sprintf("%s/me?fields=id,username,media_count&access_token=%s", c.graphBase(), url.QueryEscape(accessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("instagram profile fetch: status %d", res.StatusCode)
	}

	var body struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		MediaCount int    `json:"media_count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &Profile{UserID: body.ID, Username: body.Username, MediaCount: body.MediaCount}, nil
}

// FetchTotalLikes sums like_count over the user's media list.
func (c *Client) FetchTotalLikes(ctx context.Context, accessToken string) (int, error) {
	u := fmt.Sprintf("%s/me/media?fields=id,like_count&access_token=%s", c.graphBase(), url.QueryEscape(accessToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	res, err := c.httpClient().Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("instagram media fetch: status %d", res.StatusCode)
	}

	var body struct {
		Data []struct {
			LikeCount int `json:"like_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, err
	}
	total := 0
	for _, m := range body.Data {
		total += m.LikeCount
	}
	return total, nil
}

// CompleteConnect runs the whole linear flow: exchange, profile, likes.
// No retries; the first failure aborts the connect.
func (c *Client) CompleteConnect(ctx context.Context, code, redirectURI string) (*Profile, error) {
	token, _, err := c.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}
	prof, err := c.FetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	likes, err := c.FetchTotalLikes(ctx, token)
	if err != nil {
		return nil, err
	}
	prof.TotalLikes = likes
	return prof, nil
}
