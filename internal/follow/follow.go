package follow

import "time"

// Follow is one directed edge of the relationship graph. Follower and
// following views are queries over this relation.
type Follow struct {
	FollowerID string `gorm:"primaryKey;size:64;index" json:"follower_id"`
	FolloweeID string `gorm:"primaryKey;size:64;index" json:"followee_id"`
	CreatedAt  time.Time
}

const (
	StateFollowed   = "followed"
	StateUnfollowed = "unfollowed"
)
