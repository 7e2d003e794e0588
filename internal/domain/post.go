package domain

import "time"

// MaxPostLength is the longest content a micropost may carry.
const MaxPostLength = 140

// Post is a micropost owned by exactly one author. Posts are removed together
// with their author.
type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
}
