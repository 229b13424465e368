package models

import "time"

// Follow is a directed edge between two users. Each edge contributes exactly
// one to the follower's following_count and the followee's follower_count.
type Follow struct {
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
