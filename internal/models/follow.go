package models

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
// The composite unique index keeps the graph free of duplicate edges.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"followerId" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"followingId" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowRequest carries the id of the user to follow.
type FollowRequest struct {
	ID uint `json:"id" validate:"required"`
}
