// Package memory provides process-local repository implementations.
// They back the mock-data deployment mode (STORAGE_DRIVER=memory) and
// double as test fixtures. All state is guarded by a single mutex;
// nothing is persisted.
package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/internal/domain/repository"
)

// Store holds every entity collection behind one lock. Identifiers are
// small sequential strings, matching the mock dataset ("1", "2", ...).
type Store struct {
	mu        sync.Mutex
	users     []entity.User
	accounts  []entity.SocialAccount
	posts     []entity.Post
	analytics map[entity.Platform]entity.PlatformAnalytics

	nextUserID    int
	nextAccountID int
	nextPostID    int
}

func NewStore() *Store {
	return &Store{
		analytics:     map[entity.Platform]entity.PlatformAnalytics{},
		nextUserID:    1,
		nextAccountID: 1,
		nextPostID:    1,
	}
}

func (s *Store) Users() *UserRepository           { return &UserRepository{s: s} }
func (s *Store) Accounts() *AccountRepository     { return &AccountRepository{s: s} }
func (s *Store) Posts() *PostRepository           { return &PostRepository{s: s} }
func (s *Store) Analytics() *AnalyticsRepository  { return &AnalyticsRepository{s: s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	u.ID = strconv.Itoa(r.s.nextUserID)
	r.s.nextUserID++
	u.CreatedAt = now
	u.UpdatedAt = now
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users[i].Password = passwordHash
			r.s.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

type AccountRepository struct{ s *Store }

func (r *AccountRepository) ListByUser(userID string) ([]entity.SocialAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.SocialAccount, 0, len(r.s.accounts))
	for i := range r.s.accounts {
		if r.s.accounts[i].UserID == userID {
			out = append(out, r.s.accounts[i])
		}
	}
	return out, nil
}

func (r *AccountRepository) GetByUserAndPlatform(userID string, platform entity.Platform) (*entity.SocialAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.accounts {
		if r.s.accounts[i].UserID == userID && r.s.accounts[i].Platform == platform {
			a := r.s.accounts[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AccountRepository) Upsert(a *entity.SocialAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for i := range r.s.accounts {
		if r.s.accounts[i].UserID == a.UserID && r.s.accounts[i].Platform == a.Platform {
			a.ID = r.s.accounts[i].ID
			a.CreatedAt = r.s.accounts[i].CreatedAt
			a.UpdatedAt = now
			r.s.accounts[i] = *a
			return nil
		}
	}
	a.ID = strconv.Itoa(r.s.nextAccountID)
	r.s.nextAccountID++
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.accounts = append(r.s.accounts, *a)
	return nil
}

type PostRepository struct{ s *Store }

func (r *PostRepository) Create(p *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	p.ID = strconv.Itoa(r.s.nextPostID)
	r.s.nextPostID++
	p.CreatedAt = now
	p.UpdatedAt = now
	r.s.posts = append(r.s.posts, *p)
	return nil
}

func (r *PostRepository) ListByUser(userID string) ([]entity.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.Post, 0, len(r.s.posts))
	for i := range r.s.posts {
		if r.s.posts[i].UserID == userID {
			out = append(out, r.s.posts[i])
		}
	}
	return out, nil
}

type AnalyticsRepository struct{ s *Store }

func (r *AnalyticsRepository) Get(platform entity.Platform) (*entity.PlatformAnalytics, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.analytics[platform]
	if !ok {
		return nil, false, nil
	}
	return &a, true, nil
}

func (r *AnalyticsRepository) All() (map[entity.Platform]entity.PlatformAnalytics, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[entity.Platform]entity.PlatformAnalytics, len(r.s.analytics))
	for k, v := range r.s.analytics {
		out[k] = v
	}
	return out, nil
}

// SetAnalytics records a snapshot for a platform, replacing any previous one.
func (s *Store) SetAnalytics(platform entity.Platform, a entity.PlatformAnalytics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics[platform] = a
}
