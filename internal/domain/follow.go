package domain

import "time"

// Follow is a directed edge in the follow graph: the follower sees the
// followed user's posts in their feed. (A→B) says nothing about (B→A).
type Follow struct {
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}
