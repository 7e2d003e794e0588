package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
	"microblog/internal/fixtures"
)

// jether follows lana but not archer, so jether's feed holds lana's posts and
// jether's own, and none of archer's.
func TestFeedHasTheRightPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	set, err := fixtures.Load(ctx, env.db)
	require.NoError(t, err)
	jether := set.User("jether")

	feed, err := env.feed.Feed(ctx, jether.ID)
	require.NoError(t, err)

	inFeed := map[int64]bool{}
	for _, post := range feed {
		inFeed[post.ID] = true
	}

	for _, post := range set.Posts["lana"] {
		assert.True(t, inFeed[post.ID], "feed should include followed user's post %q", post.Content)
	}
	for _, post := range set.Posts["jether"] {
		assert.True(t, inFeed[post.ID], "feed should include own post %q", post.Content)
	}
	for _, post := range set.Posts["archer"] {
		assert.False(t, inFeed[post.ID], "feed should exclude unfollowed user's post %q", post.Content)
	}

	assert.Len(t, feed, len(set.Posts["lana"])+len(set.Posts["jether"]), "no duplicates")
}

func TestFeedIsMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	set, err := fixtures.Load(ctx, env.db)
	require.NoError(t, err)
	jether := set.User("jether")

	latest, err := env.posts.Create(ctx, jether.ID, "breaking news")
	require.NoError(t, err)

	feed, err := env.feed.Feed(ctx, jether.ID)
	require.NoError(t, err)
	require.NotEmpty(t, feed)
	assert.Equal(t, latest.ID, feed[0].ID)
}

func TestFeedMissingUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.feed.Feed(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
