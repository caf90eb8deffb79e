package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/domain/entity"
	repo "github.com/postpilot/postpilot/internal/domain/repository"
	"github.com/postpilot/postpilot/internal/infrastructure/memory"
	"github.com/postpilot/postpilot/pkg/instagram"
)

// flakyAccountRepo delegates to a real store but fails reads with a
// transient error, and counts writes.
type flakyAccountRepo struct {
	repo.AccountRepository
	readErr error
	upserts int
}

func (f *flakyAccountRepo) GetByUserAndPlatform(userID string, p entity.Platform) (*entity.SocialAccount, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.AccountRepository.GetByUserAndPlatform(userID, p)
}

func (f *flakyAccountRepo) Upsert(a *entity.SocialAccount) error {
	f.upserts++
	return f.AccountRepository.Upsert(a)
}

func seededAccountService(t *testing.T) *AccountService {
	t.Helper()
	store := memory.NewStore()
	store.SeedDemo("$2a$10$fakehashfortestingonly")
	return NewAccountService(store.Accounts(), nil, nil)
}

func TestAccountServiceListEnumerationOrder(t *testing.T) {
	svc := seededAccountService(t)

	accounts, err := svc.List("1")
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	var platforms []entity.Platform
	for _, a := range accounts {
		platforms = append(platforms, a.Platform)
	}
	assert.Equal(t, []entity.Platform{
		entity.PlatformTwitter,
		entity.PlatformInstagram,
		entity.PlatformFacebook,
		entity.PlatformLinkedIn,
	}, platforms)

	assert.Equal(t, "@demouser", accounts[0].Handle)
	assert.True(t, accounts[0].Connected)
	assert.False(t, accounts[2].Connected) // facebook starts disconnected
}

func TestAccountServiceSetConnectedToggles(t *testing.T) {
	svc := seededAccountService(t)

	a, err := svc.SetConnected("1", entity.PlatformFacebook, true)
	require.NoError(t, err)
	assert.True(t, a.Connected)
	assert.Equal(t, "Demo User", a.Handle)

	a, err = svc.SetConnected("1", entity.PlatformFacebook, false)
	require.NoError(t, err)
	assert.False(t, a.Connected)
}

func TestAccountServiceSetConnectedCreatesRow(t *testing.T) {
	store := memory.NewStore()
	svc := NewAccountService(store.Accounts(), nil, nil)

	a, err := svc.SetConnected("7", entity.PlatformTwitter, true)
	require.NoError(t, err)
	assert.True(t, a.Connected)
	assert.Equal(t, "7", a.UserID)

	accounts, err := svc.List("7")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountServiceSetConnectedUnknownPlatform(t *testing.T) {
	svc := seededAccountService(t)
	_, err := svc.SetConnected("1", "myspace", true)
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestAccountServiceSetConnectedReadFailureKeepsRow(t *testing.T) {
	store := memory.NewStore()
	store.SeedDemo("$2a$10$fakehashfortestingonly")
	flaky := &flakyAccountRepo{
		AccountRepository: store.Accounts(),
		readErr:           errors.New("read tcp: connection reset by peer"),
	}
	svc := NewAccountService(flaky, nil, nil)

	_, err := svc.SetConnected("1", entity.PlatformTwitter, false)
	require.ErrorIs(t, err, flaky.readErr)
	assert.Zero(t, flaky.upserts)

	// The stored handle survives the failed toggle.
	accounts, err := store.Accounts().ListByUser("1")
	require.NoError(t, err)
	assert.Equal(t, "@demouser", accounts[0].Handle)
	assert.True(t, accounts[0].Connected)
}

func TestAccountServiceConnectInstagram(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access_token":
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "user_id": "987"})
		case "/me":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "987", "username": "demo_ig", "media_count": 12})
		case "/me/media":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{{"like_count": 10}, {"like_count": 25}, {"like_count": 7}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ig := instagram.NewClient("cid", "secret")
	ig.OAuthBaseURL = srv.URL
	ig.GraphBaseURL = srv.URL

	store := memory.NewStore()
	store.SeedDemo("$2a$10$fakehashfortestingonly")
	svc := NewAccountService(store.Accounts(), ig, nil)

	a, err := svc.ConnectInstagram(context.Background(), "1", "authcode", "https://app.example.com/callback")
	require.NoError(t, err)
	assert.Equal(t, "@demo_ig", a.Handle)
	assert.True(t, a.Connected)
	require.NotNil(t, a.Stats)
	assert.Equal(t, 12, a.Stats.MediaCount)
	assert.Equal(t, 42, a.Stats.TotalLikes)
}

func TestAccountServiceConnectInstagramUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ig := instagram.NewClient("cid", "secret")
	ig.OAuthBaseURL = srv.URL
	ig.GraphBaseURL = srv.URL

	store := memory.NewStore()
	store.SeedDemo("$2a$10$fakehashfortestingonly")
	svc := NewAccountService(store.Accounts(), ig, nil)

	_, err := svc.ConnectInstagram(context.Background(), "1", "authcode", "https://app.example.com/callback")
	require.Error(t, err)

	// No partial write: instagram row untouched.
	accounts, err := svc.List("1")
	require.NoError(t, err)
	assert.Equal(t, "@demouser", accounts[1].Handle)
	assert.Nil(t, accounts[1].Stats)
}

func TestAccountServiceConnectInstagramReadFailureKeepsRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access_token":
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "user_id": "987"})
		case "/me":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "987", "username": "demo_ig", "media_count": 12})
		case "/me/media":
			_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"like_count": 3}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ig := instagram.NewClient("cid", "secret")
	ig.OAuthBaseURL = srv.URL
	ig.GraphBaseURL = srv.URL

	store := memory.NewStore()
	store.SeedDemo("$2a$10$fakehashfortestingonly")
	flaky := &flakyAccountRepo{
		AccountRepository: store.Accounts(),
		readErr:           errors.New("read tcp: connection reset by peer"),
	}
	svc := NewAccountService(flaky, ig, nil)

	_, err := svc.ConnectInstagram(context.Background(), "1", "authcode", "https://app.example.com/callback")
	require.ErrorIs(t, err, flaky.readErr)
	assert.Zero(t, flaky.upserts)

	accounts, lerr := store.Accounts().ListByUser("1")
	require.NoError(t, lerr)
	assert.Equal(t, "@demouser", accounts[1].Handle)
}
