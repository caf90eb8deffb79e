package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/internal/domain/entity"
	"github.com/postpilot/postpilot/internal/domain/repository"
)

func TestSeedDemoDataset(t *testing.T) {
	s := NewStore()
	s.SeedDemo("hash")

	u, err := s.Users().GetByEmail("demo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, "Demo User", u.Name)
	assert.Equal(t, "hash", u.Password)

	accounts, err := s.Accounts().ListByUser(u.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	posts, err := s.Posts().ListByUser(u.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})

	for _, p := range entity.Platforms() {
		a, ok, err := s.Analytics().Get(p)
		require.NoError(t, err)
		require.True(t, ok, p)
		assert.Positive(t, a.Followers)
		assert.Len(t, a.Daily, 6)
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.Users().GetByID("1")
	assert.True(t, repository.IsNotFound(err))
	_, err = s.Users().GetByEmail("nobody@example.com")
	assert.True(t, repository.IsNotFound(err))
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	s := NewStore()
	u := &entity.User{Email: "a@b.c", Password: "old"}
	require.NoError(t, s.Users().Create(u))

	require.NoError(t, s.Users().UpdatePassword(u.ID, "new"))
	got, err := s.Users().GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Password)

	assert.True(t, repository.IsNotFound(s.Users().UpdatePassword("999", "x")))
}

func TestAccountUpsertKeepsIdentity(t *testing.T) {
	s := NewStore()
	a := &entity.SocialAccount{UserID: "1", Platform: entity.PlatformTwitter, Handle: "@first", Connected: true}
	require.NoError(t, s.Accounts().Upsert(a))
	firstID := a.ID
	created := a.CreatedAt

	b := &entity.SocialAccount{UserID: "1", Platform: entity.PlatformTwitter, Handle: "@second", Connected: false}
	require.NoError(t, s.Accounts().Upsert(b))
	assert.Equal(t, firstID, b.ID)
	assert.Equal(t, created, b.CreatedAt)

	got, err := s.Accounts().GetByUserAndPlatform("1", entity.PlatformTwitter)
	require.NoError(t, err)
	assert.Equal(t, "@second", got.Handle)
	assert.False(t, got.Connected)

	list, err := s.Accounts().ListByUser("1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPostCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		p := &entity.Post{UserID: "1", Content: "c", Status: entity.StatusScheduled}
		require.NoError(t, s.Posts().Create(p))
	}
	posts, err := s.Posts().ListByUser("1")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "3", posts[2].ID)
	assert.False(t, posts[0].CreatedAt.IsZero())
}

func TestAnalyticsGetAbsent(t *testing.T) {
	s := NewStore()
	a, ok, err := s.Analytics().Get(entity.PlatformTwitter)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, a)

	all, err := s.Analytics().All()
	require.NoError(t, err)
	assert.Empty(t, all)
}
