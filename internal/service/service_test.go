package service

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"microblog/internal/credentials"
	"microblog/internal/repository/sqlite"
)

type testEnv struct {
	db      *sql.DB
	users   UserService
	posts   PostService
	follows FollowService
	feed    FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	followRepo := sqlite.NewFollowRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, postRepo.Init(ctx))
	require.NoError(t, followRepo.Init(ctx))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	creds := credentials.NewStore(bcrypt.MinCost)

	return &testEnv{
		db:      db,
		users:   NewUserService(db, userRepo, creds, logger),
		posts:   NewPostService(postRepo, userRepo),
		follows: NewFollowService(followRepo, userRepo),
		feed:    NewFeedService(postRepo, userRepo),
	}
}
