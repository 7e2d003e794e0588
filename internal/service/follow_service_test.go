package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog/internal/domain"
	"microblog/internal/fixtures"
)

func TestFollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	set, err := fixtures.Load(ctx, env.db)
	require.NoError(t, err)
	jether := set.User("jether")
	archer := set.User("archer")

	following, err := env.follows.IsFollowing(ctx, jether.ID, archer.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, env.follows.Follow(ctx, jether.ID, archer.ID))

	following, err = env.follows.IsFollowing(ctx, jether.ID, archer.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followers, err := env.follows.Followers(ctx, archer.ID)
	require.NoError(t, err)
	followerIDs := make([]int64, 0, len(followers))
	for _, f := range followers {
		followerIDs = append(followerIDs, f.ID)
	}
	assert.Contains(t, followerIDs, jether.ID)

	require.NoError(t, env.follows.Unfollow(ctx, jether.ID, archer.ID))

	following, err = env.follows.IsFollowing(ctx, jether.ID, archer.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	set, err := fixtures.Load(ctx, env.db)
	require.NoError(t, err)
	jether := set.User("jether")

	assert.ErrorIs(t, env.follows.Follow(ctx, jether.ID, jether.ID), domain.ErrSelfFollow)
}

func TestFollowMissingUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	set, err := fixtures.Load(ctx, env.db)
	require.NoError(t, err)

	assert.ErrorIs(t, env.follows.Follow(ctx, set.User("jether").ID, 404), domain.ErrNotFound)
}
