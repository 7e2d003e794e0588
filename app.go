// Package microblog is the domain core of a micro-blogging service: validated
// user accounts, microposts, a directed follow graph, and feed composition.
// It is a library; HTTP routing, sessions, and views belong to the consumer.
package microblog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"microblog/internal/config"
	"microblog/internal/credentials"
	"microblog/internal/repository/sqlite"
	"microblog/internal/service"
)

// App bundles the assembled services over a single sqlite database.
type App struct {
	Users   service.UserService
	Posts   service.PostService
	Follows service.FollowService
	Feed    service.FeedService

	db     *sql.DB
	logger *logrus.Logger
}

// Open opens the database, ensures the schema, and wires the services.
// A nil logger gets a default text logger.
func Open(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	followRepo := sqlite.NewFollowRepository(db)

	for _, repo := range []interface {
		Init(ctx context.Context) error
	}{userRepo, postRepo, followRepo} {
		if err := repo.Init(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	creds := credentials.NewStore(cfg.Auth.BcryptCost)

	app := &App{
		Users:   service.NewUserService(db, userRepo, creds, logger),
		Posts:   service.NewPostService(postRepo, userRepo),
		Follows: service.NewFollowService(followRepo, userRepo),
		Feed:    service.NewFeedService(postRepo, userRepo),
		db:      db,
		logger:  logger,
	}

	logger.WithField("path", cfg.Database.Path).Info("microblog core ready")
	return app, nil
}

// DB exposes the underlying handle for consumers that manage their own
// transactions or migrations.
func (a *App) DB() *sql.DB {
	return a.db
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}
