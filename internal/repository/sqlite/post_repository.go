package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"microblog/internal/dbx"
	"microblog/internal/domain"
	"microblog/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	author_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
`

const createPostsAuthorIndex = `
CREATE INDEX IF NOT EXISTS idx_posts_author_created ON posts(author_id, created_at);
`

type PostRepository struct {
	db dbx.DBTX
}

func NewPostRepository(db dbx.DBTX) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createPostsAuthorIndex); err != nil {
		return fmt.Errorf("create posts index: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	post.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (author_id, content, created_at)
VALUES (?, ?, ?)`,
		post.AuthorID,
		post.Content,
		post.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, author_id, content, created_at
FROM posts
WHERE id = ?`,
		id,
	)

	var post domain.Post
	if err := row.Scan(&post.ID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) ByAuthor(ctx context.Context, authorID int64) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, author_id, content, created_at
FROM posts
WHERE author_id = ?
ORDER BY created_at DESC, id DESC`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("select posts by author: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// Feed selects posts by the user and everyone the user follows in a single
// set-based query, most recent first.
func (r *PostRepository) Feed(ctx context.Context, userID int64) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, author_id, content, created_at
FROM posts
WHERE author_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)
   OR author_id = ?
ORDER BY created_at DESC, id DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select feed: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return requireRowAffected(res, "post")
}

func (r *PostRepository) DeleteAllByAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE author_id = ?`, authorID)
	if err != nil {
		return 0, fmt.Errorf("delete posts by author: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("posts rows affected: %w", err)
	}
	return n, nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func collectPosts(rows *sql.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
