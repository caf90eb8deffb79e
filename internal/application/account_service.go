package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/postpilot/postpilot/internal/domain/entity"
	repo "github.com/postpilot/postpilot/internal/domain/repository"
	"github.com/postpilot/postpilot/pkg/instagram"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// AccountService is the registry of platform connections. Connect and
// disconnect only flip the flag; the Instagram path additionally runs
// the code-for-token exchange through the instagram client and records
// the resulting profile numbers.
type AccountService struct {
	Repo      repo.AccountRepository
	Instagram *instagram.Client
	Logger    *logrus.Logger
}

func NewAccountService(r repo.AccountRepository, ig *instagram.Client, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Instagram: ig, Logger: logger}
}

// List returns the user's accounts in platform enumeration order.
func (s *AccountService) List(userID string) ([]entity.SocialAccount, error) {
	accounts, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	ordered := make([]entity.SocialAccount, 0, len(accounts))
	for _, p := range entity.Platforms() {
		for i := range accounts {
			if accounts[i].Platform == p {
				ordered = append(ordered, accounts[i])
			}
		}
	}
	return ordered, nil
}

// SetConnected toggles the connection flag, creating the account row on
// first connect. Storage errors propagate unchanged; only a confirmed
// missing row triggers the create path, so a flaky read can never wipe
// stored account fields with a blank upsert.
func (s *AccountService) SetConnected(userID string, platform entity.Platform, connected bool) (*entity.SocialAccount, error) {
	if !platform.Valid() {
		return nil, ErrUnknownPlatform
	}
	a, err := s.Repo.GetByUserAndPlatform(userID, platform)
	switch {
	case err == nil:
	case repo.IsNotFound(err):
		a = &entity.SocialAccount{UserID: userID, Platform: platform}
	default:
		return nil, err
	}
	a.Connected = connected
	if err := s.Repo.Upsert(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ConnectInstagram finishes the OAuth flow: exchanges the authorization
// code, fetches the profile and sums the like counts over the user's
// media, then stores the connection with those numbers. Any upstream
// failure surfaces as a single error with no partial write.
func (s *AccountService) ConnectInstagram(ctx context.Context, userID, code, redirectURI string) (*entity.SocialAccount, error) {
	if s.Instagram == nil {
		return nil, errors.New("instagram not configured")
	}
	prof, err := s.Instagram.CompleteConnect(ctx, code, redirectURI)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("instagram connect failed")
		}
		return nil, err
	}

	a, gerr := s.Repo.GetByUserAndPlatform(userID, entity.PlatformInstagram)
	switch {
	case gerr == nil:
	case repo.IsNotFound(gerr):
		a = &entity.SocialAccount{UserID: userID, Platform: entity.PlatformInstagram}
	default:
		return nil, gerr
	}
	a.Handle = "@" + prof.Username
	a.Connected = true
	a.Stats = &entity.AccountStats{
		MediaCount: prof.MediaCount,
		TotalLikes: prof.TotalLikes,
	}
	if err := s.Repo.Upsert(a); err != nil {
		return nil, err
	}
	return a, nil
}
